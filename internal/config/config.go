// Package config loads the lvlp command configuration from an optional file,
// LVLP_* environment variables and command-line flags, in rising priority,
// then validates it.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlp/internal/logging"
)

// EnvPrefix prefixes every environment override: solver.max_iterations is
// read from LVLP_SOLVER_MAX_ITERATIONS.
const EnvPrefix = "LVLP"

var (
	// ErrNoResources indicates a solve request without a resources vector.
	ErrNoResources = errors.New("config: resources are required")

	// ErrNoPrices indicates a solve request without a prices vector.
	ErrNoPrices = errors.New("config: prices are required")
)

// Config is the effective configuration.
type Config struct {
	Data      string       `mapstructure:"data"      toml:"data"`
	Resources []float64    `mapstructure:"resources" toml:"resources" validate:"dive,gte=0"`
	Prices    []float64    `mapstructure:"prices"    toml:"prices"`
	Solver    SolverConfig `mapstructure:"solver"    toml:"solver"`
	Log       LogConfig    `mapstructure:"log"       toml:"log"`
}

// SolverConfig tunes the simplex solver.
type SolverConfig struct {
	Rule          string        `mapstructure:"rule"           toml:"rule"           validate:"oneof=dantzig bland"`
	MaxIterations int           `mapstructure:"max_iterations" toml:"max_iterations" validate:"gt=0"`
	TimeLimit     time.Duration `mapstructure:"time_limit"     toml:"time_limit"     validate:"gte=0"`
	Epsilon       float64       `mapstructure:"epsilon"        toml:"epsilon"        validate:"gte=0,lt=1"` // also rejects NaN and ±Inf
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level      string `mapstructure:"level"       toml:"level"       validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format"      toml:"format"      validate:"oneof=text json"`
	File       string `mapstructure:"file"        toml:"file"`
	MaxSize    int    `mapstructure:"max_size"    toml:"max_size"    validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     toml:"max_age"     validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"    toml:"compress"`
}

// Logging converts to the logging package's Config.
func (l LogConfig) Logging() logging.Config {
	return logging.Config{
		Level:      l.Level,
		Format:     l.Format,
		File:       l.File,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// RequireProblem checks the fields the solve command cannot default.
func (c *Config) RequireProblem() error {
	if len(c.Resources) == 0 {
		return ErrNoResources
	}
	if len(c.Prices) == 0 {
		return ErrNoPrices
	}

	return nil
}

// flagKeys maps configuration keys to the flag names that may set them.
var flagKeys = map[string]string{
	"data":                  "data",
	"resources":             "resources",
	"prices":                "prices",
	"solver.rule":           "rule",
	"solver.max_iterations": "max-iterations",
	"solver.time_limit":     "time-limit",
	"solver.epsilon":        "epsilon",
	"log.level":             "log-level",
	"log.format":            "log-format",
	"log.file":              "log-file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data", "")
	v.SetDefault("resources", []float64{})
	v.SetDefault("prices", []float64{})
	v.SetDefault("solver.rule", "dantzig")
	v.SetDefault("solver.max_iterations", 10000)
	v.SetDefault("solver.time_limit", time.Duration(0))
	v.SetDefault("solver.epsilon", 1e-9)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// Load resolves the configuration.
//
// path names an optional TOML, YAML or JSON file (type from the extension).
// flags may be nil; only flags listed in flagKeys and actually present in
// the set are bound, and a flag overrides file and environment only when set
// on the command line.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Solver.Rule = strings.ToLower(strings.TrimSpace(cfg.Solver.Rule))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}
