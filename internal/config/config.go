package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Default for --remove-outliers when the flag is not given.
	RemoveOutliers bool `mapstructure:"remove_outliers" yaml:"remove_outliers"`

	// Chart output
	ChartEnabled bool   `mapstructure:"chart_enabled" yaml:"chart_enabled"`
	ChartPath    string `mapstructure:"chart_path" yaml:"chart_path"`
	ChartTitle   string `mapstructure:"chart_title" yaml:"chart_title"`
	ChartWidth   int    `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight  int    `mapstructure:"chart_height" yaml:"chart_height"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" yaml:"log_json"`
}

// Dir returns ~/.regress.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".regress"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.regress/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("REGRESS")
	v.AutomaticEnv()

	setDefaults(v)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a missing file is fine, a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in configuration without reading file or env.
func Default() *Global {
	v := viper.New()
	setDefaults(v)
	var c Global
	_ = v.Unmarshal(&c)
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("remove_outliers", false)
	v.SetDefault("chart_enabled", true)
	v.SetDefault("chart_path", "regression.png")
	v.SetDefault("chart_title", "Linear Regression")
	v.SetDefault("chart_width", 1000)
	v.SetDefault("chart_height", 800)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// Validate rejects values the renderer cannot use.
func (c *Global) Validate() error {
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("invalid chart size %dx%d: width and height must be positive", c.ChartWidth, c.ChartHeight)
	}
	if c.ChartEnabled && c.ChartPath == "" {
		return fmt.Errorf("chart_path must be set when chart_enabled is true")
	}
	return nil
}
