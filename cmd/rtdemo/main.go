// SPDX-License-Identifier: MIT

// Command rtdemo walks every construction path of the linalg kernel, prints
// the results, loads the sample JSON files and renders the demo images.
//
// Usage:
//
//	rtdemo [-log-level debug] [-vector res/vector.json] [-matrix res/matrix.json] [-out .]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds everything the demo needs from the command line.
type Config struct {
	LogLevel   slog.Level // construction traces are emitted at Debug
	VectorPath string     // Vector4 JSON document
	MatrixPath string     // Matrix4 JSON document
	OutDir     string     // where PNG files are written; empty disables images
	Size       int        // side of the square gradient image
	Noise      bool       // also write the noise image
	Seed       int64      // seed for the noise image
	Caption    string     // optional text drawn on the gradient image
}

func parseFlags(args []string, stderr io.Writer) (Config, error) {
	cfg := Config{LogLevel: slog.LevelInfo}
	fs := flag.NewFlagSet("rtdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.TextVar(&cfg.LogLevel, "log-level", slog.LevelInfo, "Log level (debug shows constructor traces).")
	fs.StringVar(&cfg.VectorPath, "vector", "res/vector.json", "Vector4 JSON file.")
	fs.StringVar(&cfg.MatrixPath, "matrix", "res/matrix.json", "Matrix4 JSON file.")
	fs.StringVar(&cfg.OutDir, "out", ".", "Output directory for images (empty to skip).")
	fs.IntVar(&cfg.Size, "size", 512, "Width and height of the generated images.")
	fs.BoolVar(&cfg.Noise, "noise", true, "Also write fractal.png (random green channel).")
	fs.Int64Var(&cfg.Seed, "seed", 1, "Seed for the noise image.")
	fs.StringVar(&cfg.Caption, "caption", "", "Text drawn on the gradient image.")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Caption = strings.TrimSpace(cfg.Caption)

	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if err := run(cfg, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
