// Package config parses and validates the picalc configuration. Values are
// resolved from command-line flags, PICALC_ environment variables, an
// optional YAML file and built-in defaults, in that order of priority.
package config
