// spheremap converts a six-image cubemap into a parabolic sphere-map
// bitmap.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/spheremap/internal/config"
	"github.com/Faultbox/spheremap/internal/cubemap"
	"github.com/Faultbox/spheremap/internal/imageio"
	"github.com/Faultbox/spheremap/internal/logger"
	"github.com/Faultbox/spheremap/internal/spheremap"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) != 3 {
		printUsage()
		os.Exit(1)
	}

	prefix := args[0]
	extension := args[1]
	outputSize, err := strconv.Atoi(args[2])
	if err != nil || outputSize <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid output size: %s\n", args[2])
		os.Exit(1)
	}

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

	outputPath := cfg.Output.Path
	if outputPath == "" {
		outputPath = prefix + "_spheremap.bmp"
	}

	logger.Info("loading cubemap",
		zap.String("prefix", prefix),
		zap.String("extension", extension))

	cm, err := cubemap.Load(prefix, extension)
	if err != nil {
		logger.Error("failed to load cubemap", zap.Error(err))
		os.Exit(1)
	}
	cm.SetClampLow(cfg.Sampling.ClampLow)

	logger.Info("generating sphere map",
		zap.Int("size", outputSize),
		zap.Int("workers", cfg.Render.Workers))

	out := spheremap.GenerateParallel(cm, outputSize, cfg.Render.Workers)

	if err := imageio.EncodeBMPFile(outputPath, out); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("wrote sphere map", zap.String("path", outputPath))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `spheremap - cubemap to parabolic sphere-map converter

Usage:
  spheremap [flags] <filename_prefix> <extension> <output_size>

Reads six cube faces named {prefix}_right.{ext}, _left, _top, _bottom,
_front and _back, and writes {prefix}_spheremap.bmp.

Flags:
  -config path   Path to config file
  -debug         Enable debug logging
  -o path        Output file path
  -workers n     Render goroutines (0 = one per CPU, 1 = sequential)

Example:
  spheremap skybox png 512`)
}
