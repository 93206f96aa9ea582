package binding

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/go-sql-driver/mysql"
	"randgen"
)

const (
	PropertyMysqlHost            = "mysql.host"
	PropertyMysqlHostDefault     = "127.0.0.1"
	PropertyMysqlPort            = "mysql.port"
	PropertyMysqlPortDefault     = "3306"
	PropertyMysqlDatabase        = "mysql.db"
	PropertyMysqlDatabaseDefault = "db"
	PropertyMysqlUser            = "mysql.user"
	PropertyMysqlUserDefault     = "user"
	PropertyMysqlPassword        = "mysql.password"
	PropertyMysqlPasswordDefault = "password"
	PropertyMysqlOptions         = "mysql.options"
	PropertyMysqlOptionsDefault  = "charset=utf8"
	PropertyMysqlTable           = "mysql.table"
	PropertyMysqlTableDefault    = "randgen_results"
)

func init() {
	randgen.RegisterSink("mysql", func() randgen.ResultSink {
		return NewMysqlSink()
	})
}

// MysqlSink inserts one row per outcome of a completed run into a
// MySQL table.
type MysqlSink struct {
	*randgen.SinkBase
	host     string
	port     int
	database string
	table    string
	user     string
	password string
	options  string
	db       *sql.DB
}

func NewMysqlSink() *MysqlSink {
	return &MysqlSink{
		SinkBase: randgen.NewSinkBase(),
	}
}

func (self *MysqlSink) Init() error {
	props := self.GetProperties()
	host := props.GetDefault(PropertyMysqlHost, PropertyMysqlHostDefault)
	propStr := props.GetDefault(PropertyMysqlPort, PropertyMysqlPortDefault)
	port, err := strconv.ParseInt(propStr, 0, 32)
	if err != nil {
		return err
	}
	self.host = host
	self.port = int(port)
	self.database = props.GetDefault(PropertyMysqlDatabase, PropertyMysqlDatabaseDefault)
	self.table = props.GetDefault(PropertyMysqlTable, PropertyMysqlTableDefault)
	self.user = props.GetDefault(PropertyMysqlUser, PropertyMysqlUserDefault)
	self.password = props.GetDefault(PropertyMysqlPassword, PropertyMysqlPasswordDefault)
	self.options = props.GetDefault(PropertyMysqlOptions, PropertyMysqlOptionsDefault)
	sourceName := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		self.user, self.password, self.host, self.port, self.database, self.options)
	db, err := sql.Open("mysql", sourceName)
	if err != nil {
		return err
	}
	self.db = db
	statement := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			label VARCHAR(64) NOT NULL,
			seed VARCHAR(32) NOT NULL,
			outcome BIGINT NOT NULL,
			draw_count BIGINT NOT NULL,
			proportion DOUBLE NOT NULL,
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL
		)`, self.table)
	_, err = db.Exec(statement)
	return err
}

func (self *MysqlSink) Persist(result *randgen.RunResult) error {
	statement := fmt.Sprintf(
		"INSERT INTO %s (label, seed, outcome, draw_count, proportion, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		self.table)
	stmt, err := self.db.Prepare(statement)
	if err != nil {
		return err
	}
	defer stmt.Close()
	tx, err := self.db.Begin()
	if err != nil {
		return err
	}
	txStmt := tx.Stmt(stmt)
	for _, outcome := range result.Outcomes {
		count := result.Counts[outcome]
		_, err = txStmt.Exec(
			result.Label,
			result.Seed,
			outcome,
			count,
			float64(count)/float64(result.DrawCount),
			result.StartTime,
			result.EndTime)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (self *MysqlSink) Cleanup() error {
	if self.db != nil {
		return self.db.Close()
	}
	return nil
}
