// Package config loads fittrack settings from an optional TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/export"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	EnvConfig     = "FITTRACK_CONFIG"
	EnvMETTable   = "FITTRACK_MET_TABLE"
	EnvAutoUser   = "FITTRACK_AUTO_USER"
	EnvExportPath = "FITTRACK_EXPORT_PATH"
	EnvLogFile    = "FITTRACK_LOG_FILE"
	EnvLogLevel   = "FITTRACK_LOG_LEVEL"
	EnvLogStderr  = "FITTRACK_LOG_STDERR"
)

type Config struct {
	MET     METConfig     `toml:"met"`
	Session SessionConfig `toml:"session"`
	Export  ExportConfig  `toml:"export"`
	Log     LogConfig     `toml:"log"`
}

type METConfig struct {
	Table     string             `toml:"table"`
	Overrides map[string]float64 `toml:"overrides"`
}

type SessionConfig struct {
	// AutoUser enables single-user mode when non-empty.
	AutoUser string `toml:"auto_user"`
}

type ExportConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Stderr bool   `toml:"stderr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MET:    METConfig{Table: calorie.TableStandard},
		Export: ExportConfig{Path: export.DefaultFileName},
		Log: LogConfig{
			File:  filepath.Join(homeDir(), ".fittrack", "fittrack.log"),
			Level: "info",
		},
	}
}

// DefaultPath is $FITTRACK_CONFIG or ~/.fittrack/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".fittrack", "config.toml")
}

// Load reads path over the defaults, then applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Log.File = expandHome(cfg.Log.File)
	cfg.Export.Path = expandHome(cfg.Export.Path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvMETTable); ok {
		c.MET.Table = v
	}
	if v, ok := os.LookupEnv(EnvAutoUser); ok {
		c.Session.AutoUser = v
	}
	if v, ok := os.LookupEnv(EnvExportPath); ok {
		c.Export.Path = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogStderr); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogStderr, err)
		}
		c.Log.Stderr = b
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if _, lerr := calorie.Lookup(c.MET.Table); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("met.table: %w", lerr))
	}
	for name, f := range c.MET.Overrides {
		if strings.TrimSpace(name) == "" {
			err = multierr.Append(err, errors.New("met.overrides: empty exercise name"))
		} else if ferr := calorie.CheckFactor(f); ferr != nil {
			err = multierr.Append(err, fmt.Errorf("met.overrides.%s: %w", name, ferr))
		}
	}
	if strings.TrimSpace(c.Export.Path) == "" {
		err = multierr.Append(err, errors.New("export.path: must not be empty"))
	}
	if _, lerr := logrus.ParseLevel(strings.TrimSpace(c.Log.Level)); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", lerr))
	}
	return err
}

// METTable builds the active MET table with overrides applied.
func (c *Config) METTable() (calorie.Table, error) {
	t, err := calorie.Lookup(c.MET.Table)
	if err != nil {
		return calorie.Table{}, err
	}
	if len(c.MET.Overrides) == 0 {
		return t, nil
	}
	return t.WithOverrides(c.MET.Overrides)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}
