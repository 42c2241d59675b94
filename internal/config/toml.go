// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Test  TestConfig  `toml:"test"`
	Paths PathsConfig `toml:"paths"`
	Weak  WeakConfig  `toml:"weak"`
}

// TestConfig maps typing test settings.
type TestConfig struct {
	Mode           *string `toml:"mode"`
	Words          *int    `toml:"words"`
	Time           *int    `toml:"time"`
	Punctuation    *bool   `toml:"punctuation"`
	Numbers        *bool   `toml:"numbers"`
	LazyMode       *bool   `toml:"lazy-mode"`
	BritishEnglish *bool   `toml:"british-english"`
	Funbox         *string `toml:"funbox"`
	Language       *string `toml:"language"`
	QuoteLength    []int   `toml:"quote-length"`
	Highlight      *string `toml:"highlight"`
	Seed           *int64  `toml:"seed"`
}

// PathsConfig overrides default file locations.
type PathsConfig struct {
	WordListDir *string `toml:"wordlist-dir"`
	Database    *string `toml:"database"`
}

// WeakConfig tunes the weak character selection used by weakspot.
type WeakConfig struct {
	Top    *int `toml:"top"`
	Window *int `toml:"window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML to path, creating parent directories.
func WriteConfig(path string, cfg FileConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close on encode failure.
			_ = cerr
		}
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return f.Close()
}
