// Package cliconfig loads the justext CLI's configuration, layering
// built-in defaults, an optional YAML config file, environment variables,
// and (applied by the caller last) explicit command-line flags.
package cliconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/go-justext/justext/internal/model"
)

// Config mirrors the tunables and encoding names of justext.Options (not
// EncErrors) plus the CLI-only settings (stop-list language, output format)
// that don't belong in the library's Options type.
type Config struct {
	Language           string  `mapstructure:"language"`
	LengthLow          int     `mapstructure:"length_low"`
	LengthHigh         int     `mapstructure:"length_high"`
	StopwordsLow       float64 `mapstructure:"stopwords_low"`
	StopwordsHigh      float64 `mapstructure:"stopwords_high"`
	MaxLinkDensity     float64 `mapstructure:"max_link_density"`
	MaxHeadingDistance int     `mapstructure:"max_heading_distance"`
	NoHeadings         bool    `mapstructure:"no_headings"`
	Encoding           string  `mapstructure:"encoding"`
	DefaultEncoding    string  `mapstructure:"default_encoding"`
	Format             string  `mapstructure:"format"`
}

// Load reads configuration from (in ascending priority) built-in defaults,
// the YAML file at configPath (if non-empty and present), and
// JUSTEXT_-prefixed environment variables.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("justext")
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := model.DefaultOptions()
	v.SetDefault("language", "english")
	v.SetDefault("length_low", d.LengthLow)
	v.SetDefault("length_high", d.LengthHigh)
	v.SetDefault("stopwords_low", d.StopwordsLow)
	v.SetDefault("stopwords_high", d.StopwordsHigh)
	v.SetDefault("max_link_density", d.MaxLinkDensity)
	v.SetDefault("max_heading_distance", d.MaxHeadingDistance)
	v.SetDefault("no_headings", d.NoHeadings)
	v.SetDefault("encoding", "")
	v.SetDefault("default_encoding", d.DefaultEncoding)
	v.SetDefault("format", "text")
}

// Options translates Config into justext.Options-compatible fields. It
// returns a model.Options directly so the root package can alias it without
// this package importing the root package (avoiding an import cycle).
func (c Config) Options() model.Options {
	return model.Options{
		LengthLow:          c.LengthLow,
		LengthHigh:         c.LengthHigh,
		StopwordsLow:       c.StopwordsLow,
		StopwordsHigh:      c.StopwordsHigh,
		MaxLinkDensity:     c.MaxLinkDensity,
		MaxHeadingDistance: c.MaxHeadingDistance,
		NoHeadings:         c.NoHeadings,
		Encoding:           c.Encoding,
		DefaultEncoding:    c.DefaultEncoding,
	}
}
