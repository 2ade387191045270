// Package config handles mbmesh configuration loading and management.
package config

// Config holds all exporter settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig holds the simulated swath dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`  // beams across track
	Length int `yaml:"length"` // pings along track
}

// OutputConfig holds output file naming.
type OutputConfig struct {
	Name string `yaml:"name"` // base name for <name>.gltf and <name>.bin
	Dir  string `yaml:"dir"`  // output directory
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference survey values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  50,
			Length: 100,
		},
		Output: OutputConfig{
			Name: "seafloor_mesh",
			Dir:  ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
