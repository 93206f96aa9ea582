package randgen

const (
	// Client
	// The target number of draws to perform.
	PropertyDrawCount        = "drawcount"
	PropertyDrawCountDefault = "10000"
	// The number of client goroutines sharing the generator.
	PropertyThreadCount        = "threadcount"
	PropertyThreadCountDefault = "1"
	// Seed for the shared random source. When unset the source keeps
	// its wall-clock seed and runs are not reproducible.
	PropertySeed = "seed"
	// A label attached to the exported results.
	PropertyLabel        = "label"
	PropertyLabelDefault = "randgen"
	// The workload class to be loaded.
	PropertyWorkload        = "workload"
	PropertyWorkloadDefault = "SamplingWorkload"
	// The result sink class to be used.
	PropertySink        = "sink"
	PropertySinkDefault = "console"
	// The exporter class to be used.
	PropertyExporter        = "exporter"
	PropertyExporterDefault = "TextMeasurementExporter"
	// If set to the path of a file, this file will be written instead
	// of stdout.
	PropertyExportFile = "exportfile"
	// Interval in seconds between status lines.
	PropertyStatusInterval        = "status.interval"
	PropertyStatusIntervalDefault = "10"
	// The log level: quiet, error, warn, info, debug or verbose.
	PropertyLogLevel        = "loglevel"
	PropertyLogLevelDefault = "error"

	// Workload
	// Comma-separated integer outcomes the generator may return.
	PropertyOutcomes        = "outcomes"
	PropertyOutcomesDefault = "-1,0,1,2,3"
	// Comma-separated probability of each outcome, index-aligned with
	// the outcomes and summing to exactly 1.
	PropertyProbabilities        = "probabilities"
	PropertyProbabilitiesDefault = "0.01,0.3,0.58,0.1,0.01"
	// Path of a `outcome<TAB>probability` distribution file. Takes
	// precedence over the inline lists when set.
	PropertyDistributionFile = "distributionfile"

	// Measurement
	// Comma-separated percentiles to export for draw latency.
	PropertyPercentiles        = "percentiles"
	PropertyPercentilesDefault = "90,95,99"
	// The highest latency (us) trackable by the hdrhistogram.
	PropertyHdrHistogramMax        = "hdrhistogram.max"
	PropertyHdrHistogramMaxDefault = "1000000"
	// Number of significant value digits kept by the hdrhistogram.
	PropertyHdrHistogramSig        = "hdrhistogram.sig"
	PropertyHdrHistogramSigDefault = "3"
)
