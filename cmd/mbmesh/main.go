// Package main is the entry point for the mbmesh exporter.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/seafloorlab/mbmesh/internal/config"
	"github.com/seafloorlab/mbmesh/internal/exporter"
	"github.com/seafloorlab/mbmesh/internal/logger"
)

const version = "0.1.0"

var flagWriteConfig = flag.Bool("write-config", false, "Write the default config to the user config directory and exit")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagWriteConfig {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("wrote default config", zap.String("dir", config.ConfigDir()))
		return
	}

	logger.Info("mbmesh exporter", zap.String("version", version))
	logger.Info("generating simulated swath bathymetry",
		zap.Int("beams", cfg.Grid.Width),
		zap.Int("pings", cfg.Grid.Length),
	)

	res, err := exporter.Run(exporter.Options{
		Width:     cfg.Grid.Width,
		Length:    cfg.Grid.Length,
		Name:      cfg.Output.Name,
		Dir:       cfg.Output.Dir,
		Generator: "mbmesh " + version,
	})
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mesh exported",
		zap.Int("vertices", res.Vertices),
		zap.Int("triangles", res.Triangles),
		zap.Int("payload_bytes", res.BinBytes),
		zap.String("gltf", res.GLTFPath),
		zap.String("bin", res.BinPath),
	)
}
