// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that loads a puzzle
// manifest, dispatches each (day, part) to its registered solver and reports
// the answers, decoupled from any specific entrypoint like a CLI.
package app
