package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danieljhkim/pushswap/internal/logging"
)

// Setting keys. Flags use the same names.
const (
	KeyBudget      = "budget"
	KeyMaxBranches = "max-branches"
	KeyLogLevel    = "log-level"
	KeyConfig      = "config"
)

const (
	DefaultBudget      = 2
	DefaultMaxBranches = 0
	DefaultLogLevel    = "warn"
)

var (
	// ErrInvalidSetting is returned when a numeric setting is out of range.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidLogLevel is returned for an unknown log level name.
	ErrInvalidLogLevel = logging.ErrInvalidLogLevel
)

// Config holds the resolved settings.
type Config struct {
	Budget      int
	MaxBranches int
	LogLevel    string

	// File is the config file that was read, if any.
	File string
}

// NewViper returns a viper instance with defaults and environment lookup
// configured.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyBudget, DefaultBudget)
	v.SetDefault(KeyMaxBranches, DefaultMaxBranches)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	return v
}

// AddFlags registers the setting flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.Int(KeyBudget, DefaultBudget, "Branch points allowed per phase when moves tie (0 = greedy)")
	fs.Int(KeyMaxBranches, DefaultMaxBranches, "Tied moves evaluated per branch point (0 = all)")
	fs.String(KeyLogLevel, DefaultLogLevel, "Diagnostic log level: "+strings.Join(logging.Levels, ", "))
	fs.String(KeyConfig, "", "Config file (default: search $XDG_CONFIG_HOME/pushswap, ~/.config/pushswap, ~/.pushswap)")
}

// Load binds fs to v, reads the config file, and returns validated settings.
// A missing config file is only an error when its path was given explicitly.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	explicit := v.GetString(KeyConfig)
	configureFile(v, explicit)
	if err := readFile(v, explicit != ""); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		Budget:      v.GetInt(KeyBudget),
		MaxBranches: v.GetInt(KeyMaxBranches),
		LogLevel:    v.GetString(KeyLogLevel),
		File:        v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the log level name.
func (c *Config) Validate() error {
	if c.Budget < 0 {
		return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidSetting, KeyBudget, c.Budget)
	}
	if c.MaxBranches < 0 {
		return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidSetting, KeyMaxBranches, c.MaxBranches)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func configureFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, dir := range SearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && !strict {
			return nil
		}
		return err
	}
	return nil
}
