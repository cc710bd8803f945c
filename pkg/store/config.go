package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where tracker state lives unless configured otherwise.
	DefaultPath = "~/.xptrack"

	configPathEnv = "XPTRACK_CONFIG_PATH"
)

type Config interface {
	BasePath() string
	// Strict reports whether updates naming unknown challenges are rejected
	// instead of ignored.
	Strict() bool
}

// LoadConfig reads the optional .xptrack config file and XPTRACK_* env vars.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("strict", false)
	v.SetConfigName(".xptrack") // .yaml is implicit
	v.SetEnvPrefix("XPTRACK")
	v.AutomaticEnv()

	if override := ConfigPathOverride(); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:       path,
		StrictMode: v.GetBool("strict"),
		File:       v.ConfigFileUsed(),
	}, nil
}

// ConfigPathOverride returns the extra config directory from the environment.
func ConfigPathOverride() string {
	return os.Getenv(configPathEnv)
}

// ConfigFile returns the config file that was read, or "" if none was found.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

type fileConfig struct {
	Path       string `json:"path"`
	StrictMode bool   `json:"strict"`
	File       string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Strict() bool {
	return f.StrictMode
}
