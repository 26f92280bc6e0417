// Package config loads tasktide settings from defaults, a YAML config file,
// TASKTIDE_* environment variables and command line overrides, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tasktide/tasktide/common"
)

// Keys understood in the config file and as TASKTIDE_<KEY> variables.
const (
	KeyDatabase   = "database"
	KeyLogFile    = "log_file"
	KeyVerbose    = "verbose"
	KeyMaxWait    = "max_wait"
	KeyTimeLayout = "time_layout"
	KeyChartWidth = "chart_width"
)

const (
	DefaultMaxWait    = 5 * time.Minute
	DefaultTimeLayout = "2006-01-02 15:04"
	DefaultChartWidth = 60

	minChartWidth = 10
)

// ErrInvalidConfig is returned when a loaded value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration.
type Config struct {
	Database   string        `mapstructure:"database"`
	LogFile    string        `mapstructure:"log_file"`
	Verbose    bool          `mapstructure:"verbose"`
	MaxWait    time.Duration `mapstructure:"max_wait"`
	TimeLayout string        `mapstructure:"time_layout"`
	ChartWidth int           `mapstructure:"chart_width"`

	// File is the config file that was read or created.
	File string `mapstructure:"-"`
}

// Options controls where Load looks and what it overrides.
type Options struct {
	// File is an explicit config file. It must exist. When empty the
	// default file under ~/.config/tasktide is used and created if missing.
	File string
	// Overrides win over every other source. Keys are the Key* constants.
	Overrides map[string]any
}

// Load builds a Config from all sources.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	file, err := readFile(v, opts.File)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(common.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.File = file
	cfg.Database = expandHome(cfg.Database)
	cfg.LogFile = expandHome(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabase, common.DefaultDatabasePath())
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyMaxWait, DefaultMaxWait.String())
	v.SetDefault(KeyTimeLayout, DefaultTimeLayout)
	v.SetDefault(KeyChartWidth, DefaultChartWidth)
}

func readFile(v *viper.Viper, explicit string) (string, error) {
	if explicit != "" {
		v.SetConfigFile(explicit)
		v.SetConfigType(common.ConfigFileType)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("config: read %s: %w", explicit, err)
		}
		return explicit, nil
	}

	dir := common.ConfigDir()
	v.SetConfigName(common.ConfigFileName)
	v.SetConfigType(common.ConfigFileType)
	v.AddConfigPath(dir)

	err := v.ReadInConfig()
	if err == nil {
		return v.ConfigFileUsed(), nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return "", fmt.Errorf("config: %w", err)
	}

	// First run: write the defaults out so the user has a file to edit.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	path := common.DefaultConfigPath()
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("config: write defaults: %w", err)
	}
	return path, nil
}

// Validate reports values that would break the CLI.
func (c *Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyDatabase)
	}
	if c.MaxWait <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, KeyMaxWait, c.MaxWait)
	}
	if strings.TrimSpace(c.TimeLayout) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyTimeLayout)
	}
	if c.ChartWidth < minChartWidth {
		return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidConfig, KeyChartWidth, minChartWidth, c.ChartWidth)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
