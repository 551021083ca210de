package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	apperrors "github.com/agbru/picalc/internal/errors"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "PICALC_"

// Defaults applied when neither a flag, an environment variable nor the
// configuration file sets a value.
const (
	DefaultN           uint64 = 1_000_000
	DefaultMethod             = "montecarlo"
	DefaultPrecision          = 15
	DefaultSeed        int64  = -1
	DefaultLogLevel           = "warn"
	DefaultSampleUnits uint64 = 10_000

	// MaxPrecision is the largest number of digits printed after the
	// decimal point.
	MaxPrecision = 48

	// MethodAll selects every registered method.
	MethodAll = "all"
)

// AppConfig holds the resolved configuration of one invocation.
type AppConfig struct {
	// N is the number of trials (Monte Carlo) or subintervals (Simpson).
	N uint64 `yaml:"n"`
	// Method is a registered method name or "all".
	Method string `yaml:"method"`
	// Workers caps the pool size. Zero means the available hardware
	// concurrency.
	Workers int `yaml:"workers"`
	// Seed is the global seed. -1 draws one from the OS entropy source.
	Seed int64 `yaml:"seed"`
	// Reseed is the Monte Carlo re-seed cadence in trials. Zero disables it.
	Reseed uint64 `yaml:"reseed"`
	// Precision is the number of digits printed after the decimal point.
	Precision int `yaml:"precision"`
	// SampleUnits is the size of the timing sample of the runtime estimator.
	SampleUnits    uint64 `yaml:"sample_units"`
	Verbose        bool   `yaml:"verbose"`
	Details        bool   `yaml:"details"`
	Quiet          bool   `yaml:"quiet"`
	Calibrate      bool   `yaml:"calibrate"`
	CalibrateQuick bool   `yaml:"calibrate_quick"`
	Metrics        bool   `yaml:"metrics"`
	NoColor        bool   `yaml:"no_color"`
	LogLevel       string `yaml:"log_level"`
	// OutputFile is a path the result report is also written to.
	OutputFile string `yaml:"output"`
	// Profile is the calibration profile path. -calibrate writes it; a run
	// without -workers reads its optimal pool size from it.
	Profile string `yaml:"profile"`
	// ConfigFile is the YAML file the configuration was read from, if any.
	ConfigFile string `yaml:"-"`
}

// RandomSeed reports whether the seed must be drawn from entropy.
func (c AppConfig) RandomSeed() bool {
	return c.Seed < 0
}

// ParseConfig parses args into an AppConfig and validates it.
//
// Parameters:
//   - programName: The name of the program, used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: The writer for flag errors and usage output.
//   - availableMethods: The registered method names.
//
// Returns flag.ErrHelp when -h or -help is given.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableMethods []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	config := AppConfig{}

	methodHelp := fmt.Sprintf("Estimation method: %s or %q.", strings.Join(availableMethods, ", "), MethodAll)
	fs.Uint64Var(&config.N, "n", DefaultN, "Number of trials (montecarlo) or subintervals (simpson).")
	fs.StringVar(&config.Method, "method", DefaultMethod, methodHelp)
	fs.StringVar(&config.Method, "m", DefaultMethod, "Shorthand for -method.")
	fs.IntVar(&config.Workers, "workers", 0, "Maximum number of pool workers (0 = available CPUs).")
	fs.IntVar(&config.Workers, "w", 0, "Shorthand for -workers.")
	fs.Int64Var(&config.Seed, "seed", DefaultSeed, "Global seed (-1 = draw from the OS entropy source).")
	fs.Uint64Var(&config.Reseed, "reseed", 0, "Re-seed each Monte Carlo stream every N trials (0 = never).")
	fs.IntVar(&config.Precision, "precision", DefaultPrecision, fmt.Sprintf("Digits printed after the decimal point (0-%d).", MaxPrecision))
	fs.IntVar(&config.Precision, "p", DefaultPrecision, "Shorthand for -precision.")
	fs.Uint64Var(&config.SampleUnits, "sample-units", DefaultSampleUnits, "Units timed by the runtime projection.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print the exact estimate and run identifiers.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for -details.")
	fs.BoolVar(&config.Details, "details", false, "Print per-chunk statistics and system usage.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the estimate.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Sweep pool sizes and report the fastest.")
	fs.BoolVar(&config.CalibrateQuick, "calibrate-quick", false, "Like -calibrate, sweeping only 1, half and all CPUs.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Dump Prometheus metrics to stderr after the run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the result report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for -output.")
	fs.StringVar(&config.Profile, "profile", "", "Calibration profile to write (-calibrate) or read the pool size from.")
	fs.StringVar(&config.ConfigFile, "config", "", "YAML configuration file.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if config.ConfigFile == "" {
		config.ConfigFile = os.Getenv(EnvPrefix + "CONFIG")
	}
	if config.ConfigFile != "" {
		if err := applyConfigFile(&config, fs, config.ConfigFile); err != nil {
			return AppConfig{}, err
		}
	}
	applyEnvOverrides(&config, fs)

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		config.NoColor = true
	}
	config.Method = strings.ToLower(strings.TrimSpace(config.Method))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))

	if err := config.Validate(availableMethods); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableMethods []string) error {
	if c.N == 0 {
		return apperrors.NewConfigError("N must be at least 1")
	}
	if c.Method != MethodAll && !slices.Contains(availableMethods, c.Method) {
		return apperrors.NewConfigError("unknown method %q (available: %s, %s)", c.Method, strings.Join(availableMethods, ", "), MethodAll)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must be 0 or positive, got %d", c.Workers)
	}
	if c.Seed < -1 {
		return apperrors.NewConfigError("seed must be -1 or non-negative, got %d", c.Seed)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return apperrors.NewConfigError("precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}
	if c.SampleUnits == 0 {
		return apperrors.NewConfigError("sample units must be at least 1")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}
