package randgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	Commands = map[string]bool{
		"run":   true,
		"check": true,
	}
	OptionPrefixes = []string{"--", "-"}
	OptionList     = []*Option{
		&Option{
			Name:            "P",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "specify a property file",
		},
		&Option{
			Name:            "p",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "specify a property value",
		},
		&Option{
			Name:            "s",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "print status to stderr",
		},
		&Option{
			Name:            "sink",
			HasArgument:     true,
			HasDefaultValue: true,
			DefaultValue:    PropertySinkDefault,
			Doc:             "use a specified result sink(can also set the \"sink\" property)",
		},
		&Option{
			Name:            "h",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "show this help message and exit",
		},
		&Option{
			Name:            "help",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "show this help message and exit",
		},
	}
	Options = make(map[string]*Option)

	ProgramName = ""
	OutputDest  *os.File
)

type Option struct {
	Name            string
	HasArgument     bool
	HasDefaultValue bool
	DefaultValue    string
	Doc             string
}

type Arguments struct {
	Command string
	Options map[string]string
	Properties
}

func Usage() {
	usageFormat := `usage: %s command [options]

Commands:
  run                Draw from the configured distribution and report frequencies
  check              Validate the distribution and print its cumulative table

Sinks:
  console            Print run results to stdout
  mysql              Insert run results into a MySQL table

Options:
  -P filename      : specify a property file
  -p name=value    : specify a property value
  -s               : print status to stderr
  -sink classname  : use a specified result sink(default %s)
  -h, --help       : show this help message and exit

Properties:
  outcomes           comma-separated integers the generator may return
  probabilities      comma-separated probability of each outcome, must sum to 1
  distributionfile   file of "outcome<TAB>probability" lines
  drawcount          number of draws to perform
  threadcount        number of goroutines drawing
  seed               seed the shared random source for a reproducible run`
	Println(usageFormat, ProgramName, PropertySinkDefault)
}

func init() {
	ProgramName = filepath.Base(os.Args[0])

	// init options
	for i := 0; i < len(OptionList); i++ {
		o := OptionList[i]
		Options[o.Name] = o
	}
	OutputDest = os.Stdout
}

func ExitOnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func ParseArgs() *Arguments {
	if len(os.Args) <= 1 {
		ExitOnError("no enough argument")
	}

	index := 1
	firstArg := os.Args[index]
	if firstArg == "-h" || firstArg == "--help" {
		Usage()
		os.Exit(0)
	}
	index++

	command := firstArg
	if _, ok := Commands[command]; !ok {
		ExitOnError("unsupported command: %s", command)
	}

	// init options to be returned with default values
	opts := make(map[string]string)
	for name, opt := range Options {
		if opt.HasDefaultValue {
			opts[name] = opt.DefaultValue
		}
	}
	// init property to be returned
	props := NewProperties()
	for i := index; i < len(os.Args); i++ {
		a := os.Args[i]
		for _, p := range OptionPrefixes {
			if strings.HasPrefix(a, p) {
				a = strings.TrimPrefix(a, p)
				break
			}
		}
		option, ok := Options[a]
		if !ok {
			ExitOnError("unknown option: %s", os.Args[i])
		}
		if option.HasArgument {
			i++
			if !(i < len(os.Args)) {
				ExitOnError("missing argument for option: %s", option.Name)
			}
			arg := os.Args[i]
			switch option.Name {
			case "sink":
				props.Add(PropertySink, arg)
			case "p":
				// it's a property, should be in `k=v` form
				parts := strings.SplitN(arg, "=", 2)
				if len(parts) != 2 {
					ExitOnError("invalid property: %s", arg)
				}
				props.Add(parts[0], parts[1])
			case "P":
				propsFromFile, err := LoadProperties(arg)
				if err != nil {
					ExitOnError(err.Error())
				}
				props.Merge(propsFromFile)
			default:
				opts[option.Name] = arg
			}
		} else {
			switch option.Name {
			case "h", "help":
				Usage()
				os.Exit(0)
			default:
				opts[option.Name] = "true"
			}
		}
	}
	return &Arguments{
		Command:    command,
		Options:    opts,
		Properties: props,
	}
}

func Main() {
	args := ParseArgs()
	SetLogLevelByName(args.Properties.GetDefault(PropertyLogLevel, PropertyLogLevelDefault))
	var client Client
	switch args.Command {
	case "run":
		client = NewRunner(args)
	case "check":
		client = NewChecker(args)
	default:
		ExitOnError("invalid command: %s", args.Command)
	}
	client.Main()
}
