package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride binds one PRIMECALC_ variable to the flags it shadows. apply
// receives the raw value and leaves the field alone when it does not parse.
type envOverride struct {
	key   string
	flags []string
	apply func(c *AppConfig, raw string)
}

func envInt(key string, field func(*AppConfig) *int, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, raw string) {
		if v, err := strconv.Atoi(raw); err == nil {
			*field(c) = v
		}
	}}
}

func envString(key string, field func(*AppConfig) *string, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, raw string) { *field(c) = raw }}
}

func envBool(key string, field func(*AppConfig) *bool, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, raw string) {
		*field(c) = parseBoolEnv(raw, *field(c))
	}}
}

var envOverrides = []envOverride{
	envInt("BYTES", func(c *AppConfig) *int { return &c.Bytes }, "bytes"),
	envInt("DIGITS", func(c *AppConfig) *int { return &c.Digits }, "digits"),
	envInt("MINUTES", func(c *AppConfig) *int { return &c.Minutes }, "minutes"),
	envInt("COUNT", func(c *AppConfig) *int { return &c.Count }, "count"),
	envInt("WORKERS", func(c *AppConfig) *int { return &c.Workers }, "workers"),
	envInt("FROM", func(c *AppConfig) *int { return &c.FromBase }, "from"),
	envInt("TO", func(c *AppConfig) *int { return &c.ToBase }, "to"),
	envInt("CAPACITY", func(c *AppConfig) *int { return &c.Capacity }, "capacity"),
	envInt("SAMPLE_INTERVAL", func(c *AppConfig) *int { return &c.SampleInterval }, "sample-interval"),
	{"SEED", []string{"seed"}, func(c *AppConfig, raw string) {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			c.Seed = v
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, raw string) {
		if v, err := time.ParseDuration(raw); err == nil {
			c.Timeout = v
		}
	}},
	{"LAYOUT", []string{"layout"}, func(c *AppConfig, raw string) { c.LayoutName = strings.ToLower(raw) }},
	envString("START", func(c *AppConfig) *string { return &c.Start }, "start"),
	envString("FILE", func(c *AppConfig) *string { return &c.PrimesFile }, "file"),
	envString("OUTPUT", func(c *AppConfig) *string { return &c.OutputFile }, "output", "o"),
	envString("METRICS_ADDR", func(c *AppConfig) *string { return &c.MetricsAddr }, "metrics-addr"),
	envString("LOG_LEVEL", func(c *AppConfig) *string { return &c.LogLevel }, "log-level"),
	envBool("VERBOSE", func(c *AppConfig) *bool { return &c.Verbose }, "verbose", "v"),
	envBool("QUIET", func(c *AppConfig) *bool { return &c.Quiet }, "quiet", "q"),
	envBool("NO_COLOR", func(c *AppConfig) *bool { return &c.NoColor }, "no-color"),
	envBool("TUI", func(c *AppConfig) *bool { return &c.TUI }, "tui"),
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case and returns
// fallback for anything else.
func parseBoolEnv(raw string, fallback bool) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

// applyEnvOverrides copies PRIMECALC_ variables into config for every flag
// the command line left unset, so flags win over the environment and the
// environment wins over defaults. PRIMECALC_MODE supplies the mode when no
// positional mode was given.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if config.Mode == "" {
		config.Mode = os.Getenv(EnvPrefix + "MODE")
	}
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	for _, o := range envOverrides {
		raw := os.Getenv(EnvPrefix + o.key)
		if raw == "" || anyExplicit(explicit, o.flags) {
			continue
		}
		o.apply(config, raw)
	}
}

func anyExplicit(explicit map[string]bool, flags []string) bool {
	for _, name := range flags {
		if explicit[name] {
			return true
		}
	}
	return false
}
