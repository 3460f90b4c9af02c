// Package config defines the format-agnostic settings model for the tool,
// along with the Loader interface for reading settings from a file.
//
// Settings come from three layers, highest precedence first: command-line
// flags, the settings file, and the defaults returned by Defaults. The HCL
// implementation of Loader lives in internal/hcl.
package config
