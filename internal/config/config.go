// Package config loads f1cal settings from defaults, an optional YAML file and F1CAL_* environment
// variables; command-line overrides are merged on top.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "F1CAL"
	fileName  = "f1cal"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Season     string           `mapstructure:"season"`
	API        APIConfig        `mapstructure:"api"`
	LiveTiming LiveTimingConfig `mapstructure:"livetiming"`
	Locale     LocaleConfig     `mapstructure:"locale"`
	Log        LogConfig        `mapstructure:"log"`
	Server     ServerConfig     `mapstructure:"server"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LiveTimingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	HTTPURL string `mapstructure:"http_url"`
	WSURL   string `mapstructure:"ws_url"`
}

type LocaleConfig struct {
	Language string `mapstructure:"language"`
	Timezone string `mapstructure:"timezone"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Addr     string        `mapstructure:"addr"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone '%s': %w", ErrInvalid, c.Locale.Timezone, err)
	}
	return loc, nil
}

var seasonRe = regexp.MustCompile(`^(current|\d{4})$`)

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if !seasonRe.MatchString(c.Season) {
		return fmt.Errorf("%w: season '%s' must be 'current' or a year", ErrInvalid, c.Season)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url is required", ErrInvalid)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalid)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

/* Loading
------------------------------------------------------------------------------------------------- */

type Option = func(l *loader)

// WithFile reads settings from the given file instead of searching for f1cal.yaml.
func WithFile(path string) Option {
	return func(l *loader) { l.file = path }
}

// WithSearchPaths sets the directories searched for f1cal.yaml when no file is given.
func WithSearchPaths(paths ...string) Option {
	return func(l *loader) { l.paths = paths }
}

// WithOverrides merges non-zero values of the given config over the loaded settings; used for
// command-line flags.
func WithOverrides(c Config) Option {
	return func(l *loader) { l.overrides = append(l.overrides, c) }
}

type loader struct {
	file      string
	paths     []string
	overrides []Config
}

// Load resolves the configuration. Precedence from lowest to highest: defaults, config file,
// environment, overrides.
func Load(opts ...Option) (Config, error) {
	l := loader{paths: []string{"."}}
	// apply given options
	for _, opt := range opts {
		opt(&l)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.file != "" {
		v.SetConfigFile(l.file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		for _, p := range l.paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	for _, o := range l.overrides {
		if err := Merge(&c, o); err != nil {
			return Config{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Merge copies every non-zero field of src over dst.
func Merge(dst *Config, src Config) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("season", "current")
	v.SetDefault("api.base_url", "https://api.jolpi.ca/ergast/f1")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("livetiming.enabled", true)
	v.SetDefault("livetiming.http_url", "https://livetiming.formula1.com")
	v.SetDefault("livetiming.ws_url", "wss://livetiming.formula1.com")
	v.SetDefault("locale.language", "cs")
	v.SetDefault("locale.timezone", "Europe/Prague")
	v.SetDefault("log.file", "f1cal.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cache_ttl", 5*time.Minute)
}
