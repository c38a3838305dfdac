// Package config defines the format-agnostic puzzle manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// The `config.Manifest` is the single source of truth for the runner in the
// `app` package. Concrete loaders, such as for HCL and YAML, are provided in
// separate packages.
package config
