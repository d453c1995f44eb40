// Package config loads optional settings from a TOML file. Everything has
// a sensible default; a missing file is not an error. Environment
// overrides are applied only at the CLI boundary, never here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/jidn/idid-cli/internal/timelog"
)

// DefaultConfigRelPath locates the config under the user's home directory.
const DefaultConfigRelPath = ".config/idid/config.toml"

// Email holds SMTP submission settings for the email report command.
type Email struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	To       string `toml:"to"`
	Subject  string `toml:"subject"`
}

// Config captures the fields idid reads from its config file.
type Config struct {
	TSVPath     string   `toml:"tsv"`
	StartText   string   `toml:"start_text"`
	ReportWidth int      `toml:"report_width"`
	Weekdays    []string `toml:"weekdays"`
	Email       Email    `toml:"email"`
}

// Load parses the config at path, falling back to defaults when the file
// is missing. An empty path means the default location.
func Load(path string) (Config, error) {
	cfg := Config{
		StartText:   timelog.DefaultStartText,
		ReportWidth: 80,
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.StartText == "" {
		cfg.StartText = timelog.DefaultStartText
	}
	if cfg.ReportWidth <= 0 {
		cfg.ReportWidth = 80
	}
	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, filepath.FromSlash(DefaultConfigRelPath)), nil
}
