package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl/.yaml file or a directory of them
	InputDir     string // where dayNN.txt inputs live

	// Single-puzzle selection, used when no manifest is given.
	Day       int
	Part      int // 0 runs every registered part
	InputPath string

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" && cfg.Day == 0 {
		return nil, errors.New("either a manifest path or a day is required")
	}
	if cfg.ManifestPath != "" && cfg.Day != 0 {
		return nil, errors.New("a manifest and a day selection cannot be combined")
	}
	if cfg.Day != 0 && (cfg.Day < 1 || cfg.Day > 25) {
		return nil, fmt.Errorf("day %d out of range 1..25", cfg.Day)
	}
	if cfg.Part < 0 || cfg.Part > 2 {
		return nil, fmt.Errorf("part %d out of range 1..2", cfg.Part)
	}
	if cfg.Day == 0 && (cfg.Part != 0 || cfg.InputPath != "") {
		return nil, errors.New("part and input require a day")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", cfg.WorkerCount)
	}
	return &cfg, nil
}
