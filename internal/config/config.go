// Package config holds the settings of the zsh-docs build tool itself
// (directories, base URL, dev server port). The site's own navigation and
// presentation live in package site.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shide1989/zsh-docs/internal/validate"
)

// Config is the build tool configuration.
type Config struct {
	OutputDir  string `mapstructure:"outputDir"`
	ContentDir string `mapstructure:"contentDir"`
	LayoutsDir string `mapstructure:"layoutsDir"`
	StaticDir  string `mapstructure:"staticDir"`
	// SiteConfig is an optional YAML/JSON site config file; empty means the
	// built-in configuration.
	SiteConfig string `mapstructure:"siteConfig"`
	BaseURL    string `mapstructure:"baseURL"`
	Port       int    `mapstructure:"port"`
	LogLevel   string `mapstructure:"logLevel"`
}

// EnvPrefix prefixes environment overrides, e.g. ZSHDOCS_OUTPUTDIR.
const EnvPrefix = "ZSHDOCS"

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"output-dir":  "outputDir",
	"content-dir": "contentDir",
	"site-config": "siteConfig",
	"base-url":    "baseURL",
	"port":        "port",
	"log-level":   "logLevel",
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// SetDefaults registers the default value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("outputDir", "public")
	v.SetDefault("contentDir", "docs")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("siteConfig", "")
	v.SetDefault("baseURL", "")
	v.SetDefault("port", 1313)
	v.SetDefault("logLevel", "info")
}

// Load reads the tool configuration. cfgFile may be empty, in which case
// ./zsh-docs.yaml is used when present. Flags, when given, override file
// and environment values. The returned string names the file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, string, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("zsh-docs")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, "", fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, "", err
	}
	return cfg, used, nil
}

// Validate checks the settings that would otherwise fail late, e.g. a dev
// server port of 0 that makes the listener pick a random port.
func Validate(cfg Config) error {
	v := validate.New("tool config")
	v.NotEmpty("outputDir", cfg.OutputDir)
	v.NotEmpty("contentDir", cfg.ContentDir)
	v.Port("port", cfg.Port)
	v.OneOf("logLevel", strings.ToLower(cfg.LogLevel), logLevels)
	return v.Err()
}
