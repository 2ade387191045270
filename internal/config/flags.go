package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagWidth  = flag.Int("width", 0, "Beams across track (grid width)")
	flagLength = flag.Int("length", 0, "Pings along track (grid length)")
	flagOut    = flag.String("out", "", "Output base name (<name>.gltf and <name>.bin)")
	flagDir    = flag.String("dir", "", "Output directory")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
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
	if *flagWidth > 0 {
		cfg.Grid.Width = *flagWidth
	}
	if *flagLength > 0 {
		cfg.Grid.Length = *flagLength
	}
	if *flagOut != "" {
		cfg.Output.Name = *flagOut
	}
	if *flagDir != "" {
		cfg.Output.Dir = *flagDir
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
}
