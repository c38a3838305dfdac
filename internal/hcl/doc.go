// Package hcl provides the concrete HCL implementation of the manifest
// Loader interface defined in the `config` package. It is responsible for
// file parsing, HCL-to-model translation and the CTY conversion of expected
// answers.
package hcl
