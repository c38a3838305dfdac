package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/adventgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// defaults are read from the environment; flags override them.
type defaults struct {
	LogLevel  string `env:"AOC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"AOC_LOG_FORMAT" envDefault:"text"`
	Workers   int    `env:"AOC_WORKERS"`
	InputDir  string `env:"AOC_INPUT_DIR" envDefault:"inputs"`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var def defaults
	if err := env.Parse(&def); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}
	if def.Workers <= 0 {
		def.Workers = runtime.GOMAXPROCS(0)
	}

	flagSet := flag.NewFlagSet("adventgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
adventgrid - Advent of Code 2023 solutions.

Usage:
  adventgrid [options] [MANIFEST_PATH]
  adventgrid -day N [-part P] [-input FILE]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl/.yaml manifest or a directory containing them.

Environment:
  AOC_LOG_LEVEL, AOC_LOG_FORMAT, AOC_WORKERS, AOC_INPUT_DIR
    Defaults for the matching options.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	dayFlag := flagSet.Int("day", 0, "Solve a single day (1-25) instead of a manifest.")
	partFlag := flagSet.Int("part", 0, "Part to solve with -day. 0 solves every part.")
	inputFlag := flagSet.String("input", "", "Input file for -day. Defaults to dayNN.txt in the input directory.")
	inputDirFlag := flagSet.String("input-dir", def.InputDir, "Directory holding dayNN.txt inputs.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", def.Workers, "Number of puzzles solved concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Manifest path determined.", "path", path)

	if path == "" && *dayFlag == 0 {
		slog.Debug("Nothing to solve, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ManifestPath: path,
		InputDir:     *inputDirFlag,
		Day:          *dayFlag,
		Part:         *partFlag,
		InputPath:    *inputFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		WorkerCount:  *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
