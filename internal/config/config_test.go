package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvMETTable, EnvAutoUser, EnvExportPath, EnvLogFile, EnvLogLevel, EnvLogStderr} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, calorie.TableStandard, cfg.MET.Table)
	assert.Equal(t, export.DefaultFileName, cfg.Export.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Session.AutoUser)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[met]
table = "compendium"

[met.overrides]
Rowing = 7.0
"Hiking/Trekking" = 6.5

[session]
auto_user = "Me"

[export]
path = "/tmp/out.txt"

[log]
file = "/tmp/fittrack.log"
level = "debug"
stderr = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "compendium", cfg.MET.Table)
	assert.Equal(t, map[string]float64{"Rowing": 7.0, "Hiking/Trekking": 6.5}, cfg.MET.Overrides)
	assert.Equal(t, "Me", cfg.Session.AutoUser)
	assert.Equal(t, "/tmp/out.txt", cfg.Export.Path)
	assert.Equal(t, LogConfig{File: "/tmp/fittrack.log", Level: "debug", Stderr: true}, cfg.Log)

	tbl, err := cfg.METTable()
	require.NoError(t, err)
	assert.Equal(t, 7.0, tbl.Factor("rowing"))
	assert.Equal(t, 6.5, tbl.Factor("Hiking/Trekking"))
	assert.Equal(t, 9.8, tbl.Factor("Running"))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[met]\ntable = \"compendium\"\n")
	t.Setenv(EnvMETTable, "standard")
	t.Setenv(EnvAutoUser, "Solo")
	t.Setenv(EnvLogStderr, "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "standard", cfg.MET.Table)
	assert.Equal(t, "Solo", cfg.Session.AutoUser)
	assert.True(t, cfg.Log.Stderr)
}

func TestLoad_BadEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogStderr, "perhaps")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_UnknownKey(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "[met]\ntabel = \"standard\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "met.tabel")
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "[met\n"))
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.MET.Table = "imperial"
	cfg.MET.Overrides = map[string]float64{"Rowing": 0}
	cfg.Log.Level = "loud"
	cfg.Export.Path = " "

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"met.table", "met.overrides.Rowing", "log.level", "export.path"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_AcceptsEveryLogrusLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", " INFO "} {
		cfg := Default()
		cfg.Log.Level = level
		assert.NoError(t, cfg.Validate(), "level %q", level)
	}
}

func TestValidate_RejectsOversizedOverride(t *testing.T) {
	cfg := Default()
	cfg.MET.Overrides = map[string]float64{"Rowing": calorie.MaxFactor + 1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "met.overrides.Rowing")
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	t.Setenv(EnvConfig, "/etc/fittrack.toml")
	assert.Equal(t, "/etc/fittrack.toml", DefaultPath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.log"), expandHome("~/x.log"))
	assert.Equal(t, "/abs", expandHome("/abs"))
}
