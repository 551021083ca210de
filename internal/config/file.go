package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/picalc/internal/errors"
)

// fileConfig mirrors AppConfig with optional fields, so that keys absent
// from the file leave flag defaults untouched.
type fileConfig struct {
	N              *uint64 `yaml:"n"`
	Method         *string `yaml:"method"`
	Workers        *int    `yaml:"workers"`
	Seed           *int64  `yaml:"seed"`
	Reseed         *uint64 `yaml:"reseed"`
	Precision      *int    `yaml:"precision"`
	SampleUnits    *uint64 `yaml:"sample_units"`
	Verbose        *bool   `yaml:"verbose"`
	Details        *bool   `yaml:"details"`
	Quiet          *bool   `yaml:"quiet"`
	Calibrate      *bool   `yaml:"calibrate"`
	CalibrateQuick *bool   `yaml:"calibrate_quick"`
	Metrics        *bool   `yaml:"metrics"`
	NoColor        *bool   `yaml:"no_color"`
	LogLevel       *string `yaml:"log_level"`
	OutputFile     *string `yaml:"output"`
	Profile        *string `yaml:"profile"`
}

// loadFile reads a YAML configuration file. Unknown keys are rejected.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, apperrors.NewConfigError("reading config file: %v", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}
	return fc, nil
}

// applyConfigFile copies the values of the file into config for every flag
// not set explicitly on the command line.
func applyConfigFile(config *AppConfig, fs *flag.FlagSet, path string) error {
	fc, err := loadFile(path)
	if err != nil {
		return err
	}
	unset := func(flags ...string) bool { return !isFlagSetAny(fs, flags...) }

	if fc.N != nil && unset("n") {
		config.N = *fc.N
	}
	if fc.Method != nil && unset("method", "m") {
		config.Method = *fc.Method
	}
	if fc.Workers != nil && unset("workers", "w") {
		config.Workers = *fc.Workers
	}
	if fc.Seed != nil && unset("seed") {
		config.Seed = *fc.Seed
	}
	if fc.Reseed != nil && unset("reseed") {
		config.Reseed = *fc.Reseed
	}
	if fc.Precision != nil && unset("precision", "p") {
		config.Precision = *fc.Precision
	}
	if fc.SampleUnits != nil && unset("sample-units") {
		config.SampleUnits = *fc.SampleUnits
	}
	if fc.Verbose != nil && unset("verbose", "v") {
		config.Verbose = *fc.Verbose
	}
	if fc.Details != nil && unset("details", "d") {
		config.Details = *fc.Details
	}
	if fc.Quiet != nil && unset("quiet", "q") {
		config.Quiet = *fc.Quiet
	}
	if fc.Calibrate != nil && unset("calibrate") {
		config.Calibrate = *fc.Calibrate
	}
	if fc.CalibrateQuick != nil && unset("calibrate-quick") {
		config.CalibrateQuick = *fc.CalibrateQuick
	}
	if fc.Metrics != nil && unset("metrics") {
		config.Metrics = *fc.Metrics
	}
	if fc.NoColor != nil && unset("no-color") {
		config.NoColor = *fc.NoColor
	}
	if fc.LogLevel != nil && unset("log-level") {
		config.LogLevel = *fc.LogLevel
	}
	if fc.OutputFile != nil && unset("output", "o") {
		config.OutputFile = *fc.OutputFile
	}
	if fc.Profile != nil && unset("profile") {
		config.Profile = *fc.Profile
	}
	return nil
}
