package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagShape      = flag.String("shape", "", "Mesh shape: sphere or icosahedron")
	flagDepth      = flag.Int("depth", -1, "Subdivision depth")
	flagIndexWidth = flag.Int("index-width", 0, "Index width in bits (16 or 32)")
	flagIterative  = flag.Bool("iterative", false, "Use the explicit work stack instead of recursion")
	flagRuns       = flag.Int("runs", 0, "Benchmark runs per depth")
	flagCSV        = flag.String("csv", "", "Append benchmark results to this CSV file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagShape != "" {
		cfg.Mesh.Shape = *flagShape
	}
	if *flagDepth >= 0 {
		cfg.Mesh.Depth = *flagDepth
	}
	if *flagIndexWidth > 0 {
		cfg.Mesh.IndexWidth = *flagIndexWidth
	}
	if *flagIterative {
		cfg.Mesh.Strategy = "iterative"
	}
	if *flagRuns > 0 {
		cfg.Bench.Runs = *flagRuns
	}
	if *flagCSV != "" {
		cfg.Bench.CSVPath = *flagCSV
	}
}
