// Package cli turns command-line flags and AOC_* environment variables into
// an app.Config. It owns usage output and the exit codes reported by
// cmd/cli.
package cli
