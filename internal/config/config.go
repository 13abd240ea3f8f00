// Package config parses the command line and environment into the
// application configuration.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of every environment variable read by ParseConfig.
const EnvPrefix = "PRIMECALC_"

// Modes of operation. The mode is the first positional argument.
const (
	ModeNext     = "next"
	ModeRandom   = "random"
	ModeProbable = "probable"
	ModeResume   = "resume"
	ModeConvert  = "convert"
	ModeSqrt     = "sqrt"
	ModeREPL     = "repl"
)

// Modes lists every accepted mode in the order shown by the usage line.
var Modes = []string{ModeNext, ModeRandom, ModeProbable, ModeResume, ModeConvert, ModeSqrt, ModeREPL}

// Layout names accepted by --layout.
const (
	LayoutByte = "byte"
	LayoutBit  = "bit"
)

// Defaults for flags whose zero value is meaningful.
const (
	DefaultBytes          = 4
	DefaultDigits         = 20
	DefaultMinutes        = 1
	DefaultPrimesFile     = "primes"
	DefaultCount          = 1
	DefaultFromBase       = 10
	DefaultToBase         = 16
	DefaultTimeout        = 10 * time.Minute
	DefaultSampleInterval = 10000
	DefaultLogLevel       = "info"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Mode selects the tool to run (next, random, probable, resume, convert,
	// sqrt, repl).
	Mode string
	// Start is the starting candidate of the next mode in hex persistence
	// format, e.g. "0100_0D".
	Start string
	// Value is the positional operand of the convert and sqrt modes.
	Value string
	// Bytes is the size of random candidates.
	Bytes int
	// Digits is the number of decimal digits of probable mode candidates.
	Digits int
	// Minutes bounds the trial division of each probable mode candidate.
	Minutes int
	// PrimesFile is the persisted prime list of the resume mode.
	PrimesFile string
	// Count is the number of primes to find in resume mode; 0 runs until
	// canceled.
	Count int
	// Workers is the number of concurrent searches in random mode.
	Workers int
	// Seed makes random candidates reproducible. Zero draws from crypto/rand.
	Seed uint64
	// FromBase and ToBase are the bases of the convert mode.
	FromBase int
	ToBase   int
	// LayoutName selects the engine limb width ("byte" or "bit").
	LayoutName string
	// Capacity overrides the layout's limb capacity when non-zero.
	Capacity int
	// SampleInterval is the number of divisions between cancellation checks.
	SampleInterval int
	// Timeout is the maximum duration of the whole run.
	Timeout time.Duration
	// Quiet reduces output to the bare result.
	Quiet bool
	// Verbose prints the full decimal value of large results.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI launches the interactive dashboard.
	TUI bool
	// MetricsAddr, when set, serves /metrics and /healthz on that address.
	MetricsAddr string
	// OutputFile receives the result in addition to standard output.
	OutputFile string
	// LogLevel is the zerolog level name.
	LogLevel string
	// Completion generates a shell completion script and exits.
	Completion string
}

// UsageLine returns the one-line synopsis of the program.
func UsageLine(programName string) string {
	return fmt.Sprintf("%s <%s> [flags] [value]", programName, strings.Join(Modes, "|"))
}

// ParseConfig parses the command line arguments and environment overrides.
// The first argument, when it is not a flag, is the mode. Flags and
// positional values may be interleaved.
//
// Parameters:
//   - programName: The name of the program, used in usage messages.
//   - args: The command line arguments, without the program name.
//   - errorWriter: Destination of flag parsing errors and help output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp, an apperrors.UsageError or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	config := AppConfig{}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		config.Mode = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s\n\nFlags:\n", UsageLine(programName))
		fs.PrintDefaults()
	}

	fs.StringVar(&config.Start, "start", "", "Starting candidate of the next mode, in hex persistence format.")
	fs.IntVar(&config.Bytes, "bytes", DefaultBytes, "Size in bytes of random candidates.")
	fs.IntVar(&config.Digits, "digits", DefaultDigits, "Decimal digits of probable mode candidates.")
	fs.IntVar(&config.Minutes, "minutes", DefaultMinutes, "Trial division budget per probable candidate, in minutes.")
	fs.StringVar(&config.PrimesFile, "file", DefaultPrimesFile, "Persisted prime list of the resume mode.")
	fs.IntVar(&config.Count, "count", DefaultCount, "Primes to find in resume mode (0 = until interrupted).")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent searches in random mode (0 = one per CPU).")
	fs.Uint64Var(&config.Seed, "seed", 0, "Seed for reproducible random candidates (0 = crypto/rand).")
	fs.IntVar(&config.FromBase, "from", DefaultFromBase, "Input base of the convert mode (2-32).")
	fs.IntVar(&config.ToBase, "to", DefaultToBase, "Output base of the convert mode (2-32).")
	fs.StringVar(&config.LayoutName, "layout", LayoutByte, "Engine limb layout: 'byte' or 'bit'.")
	fs.IntVar(&config.Capacity, "capacity", 0, "Limb capacity override (0 = layout default).")
	fs.IntVar(&config.SampleInterval, "sample-interval", DefaultSampleInterval, "Divisions between cancellation checks.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run (e.g. 30s, 10m).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print full decimal values.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.OutputFile, "output", "", "Write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script: bash, zsh, fish, powershell.")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveDefaults(config)

	if err := config.assignPositional(programName, positional); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(programName); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// parseInterleaved parses fs repeatedly, collecting the positional
// arguments found between flags.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func (c *AppConfig) assignPositional(programName string, positional []string) error {
	if len(positional) == 0 {
		return nil
	}
	if len(positional) > 1 {
		return apperrors.UsageError{Usage: UsageLine(programName)}
	}
	switch c.Mode {
	case ModeConvert, ModeSqrt:
		c.Value = positional[0]
	case ModeNext:
		c.Start = positional[0]
	case ModeResume:
		c.PrimesFile = positional[0]
	default:
		return apperrors.UsageError{Usage: UsageLine(programName)}
	}
	return nil
}

// Validate checks the semantic consistency of the configuration.
//
// Returns:
//   - error: An apperrors.UsageError when the mode or its operand is
//     missing, an apperrors.ConfigError for invalid values, or nil.
func (c AppConfig) Validate(programName string) error {
	if c.Completion != "" {
		if !slices.Contains([]string{"bash", "zsh", "fish", "powershell", "ps"}, strings.ToLower(c.Completion)) {
			return apperrors.NewConfigError("unsupported completion shell: '%s'", c.Completion)
		}
		return nil
	}
	if !slices.Contains(Modes, c.Mode) {
		return apperrors.UsageError{Usage: UsageLine(programName)}
	}
	if (c.Mode == ModeConvert || c.Mode == ModeSqrt) && c.Value == "" {
		return apperrors.UsageError{Usage: fmt.Sprintf("%s %s [flags] <value>", programName, c.Mode)}
	}

	if c.LayoutName != LayoutByte && c.LayoutName != LayoutBit {
		return apperrors.NewConfigError("unknown layout: '%s' (expected 'byte' or 'bit')", c.LayoutName)
	}
	if c.Capacity < 0 || c.Capacity > largeuint.MaxCapacity {
		return apperrors.NewConfigError("capacity must be between 1 and %d, got %d", largeuint.MaxCapacity, c.Capacity)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.SampleInterval <= 0 {
		return apperrors.NewConfigError("sample interval must be strictly positive")
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("workers must be at least 1, got %d", c.Workers)
	}
	if c.Count < 0 {
		return apperrors.NewConfigError("count cannot be negative")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return apperrors.NewConfigError("invalid log level: '%s'", c.LogLevel)
	}

	switch c.Mode {
	case ModeRandom:
		maxBytes := c.Layout().MaxBits() / 8
		if c.Bytes < 1 || c.Bytes > maxBytes {
			return apperrors.NewConfigError("bytes must be between 1 and %d for the %s layout, got %d", maxBytes, c.LayoutName, c.Bytes)
		}
	case ModeProbable:
		maxDigits := int(float64(c.Layout().MaxBits()) * math.Log10(2))
		if c.Digits < 1 || c.Digits > maxDigits {
			return apperrors.NewConfigError("digits must be between 1 and %d for the %s layout, got %d", maxDigits, c.LayoutName, c.Digits)
		}
		if c.Minutes < 1 {
			return apperrors.NewConfigError("minutes must be strictly positive")
		}
	case ModeConvert:
		for _, base := range []int{c.FromBase, c.ToBase} {
			if base < 2 || base > 32 {
				return apperrors.NewConfigError("base must be between 2 and 32, got %d", base)
			}
		}
	}
	return nil
}

// Layout returns the engine layout selected by LayoutName and Capacity.
func (c AppConfig) Layout() largeuint.Layout {
	layout := largeuint.ByteLayout
	if c.LayoutName == LayoutBit {
		layout = largeuint.BitLayout
	}
	if c.Capacity > 0 {
		layout = layout.WithCapacity(c.Capacity)
	}
	return layout
}

// TrialLimit returns the trial division budget of the probable mode.
func (c AppConfig) TrialLimit() time.Duration {
	return time.Duration(c.Minutes) * time.Minute
}
