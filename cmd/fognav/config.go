package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// errUsage marks command-line mistakes; main prints usage for them.
var errUsage = errors.New("usage")

// config is the merged command-line and environment configuration.
// Precedence: flag > environment > default.
type config struct {
	nodes      string
	edges      string
	objectives string
	output     string

	expect      string
	logLevel    zapcore.Level
	echo        bool
	replanLimit int
}

// parseConfig reads FOGNAV_* variables through getenv, then flags and positional
// arguments from args (without the program name).
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config
	level := stringEnv(getenv, "FOGNAV_LOG_LEVEL", "warn")

	fs := flag.NewFlagSet("fognav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fognav [flags] <nodes> <edges> <objectives> <output>")
		fs.PrintDefaults()
	}
	fs.StringVar(&level, "log-level", level, "log level: debug, info, warn or error (env FOGNAV_LOG_LEVEL)")
	fs.BoolVar(&cfg.echo, "echo", boolEnv(getenv, "FOGNAV_ECHO", false), "mirror events to stdout (env FOGNAV_ECHO)")
	fs.IntVar(&cfg.replanLimit, "replan-limit", intEnv(getenv, "FOGNAV_REPLAN_LIMIT", 0), "replans allowed per objective, 0 for the grid's cell count (env FOGNAV_REPLAN_LIMIT)")
	fs.StringVar(&cfg.expect, "expect", "", "compare the output with this file and fail on any difference")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 4 {
		return cfg, fmt.Errorf("%w: want 4 file arguments, got %d", errUsage, fs.NArg())
	}
	cfg.nodes, cfg.edges, cfg.objectives, cfg.output = fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3)

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.logLevel = lvl
	if cfg.replanLimit < 0 {
		return cfg, fmt.Errorf("%w: replan limit %d is negative", errUsage, cfg.replanLimit)
	}

	return cfg, nil
}

func stringEnv(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(getenv func(string) string, key string, fallback int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(getenv func(string) string, key string, fallback bool) bool {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
