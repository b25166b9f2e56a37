// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CeresDB/dbc/pkg/coderr"
	"github.com/CeresDB/dbc/pkg/log"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "example.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	re := require.New(t)

	cfg, err := Load("")
	re.NoError(err)
	re.Equal(Default(), cfg)
	re.NoError(cfg.ValidateAndAdjust())
}

func TestLoadFileAndEnv(t *testing.T) {
	re := require.New(t)

	path := writeConfig(t, `
fail = false

[log]
level = "debug"
file = "stdout"
`)
	cfg, err := Load(path)
	re.NoError(err)
	re.False(cfg.Fail)
	re.Equal(log.Config{Level: "debug", File: "stdout"}, cfg.Log)

	t.Setenv("DBC_LOG_LEVEL", "warn")
	t.Setenv("DBC_FAIL", "true")
	cfg, err = Load(path)
	re.NoError(err)
	re.True(cfg.Fail)
	re.Equal("warn", cfg.Log.Level)
	re.Equal("stdout", cfg.Log.File)
}

func TestLoadErrors(t *testing.T) {
	re := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	re.True(coderr.Is(err, coderr.NotFound), "err:%v", err)

	_, err = Load(writeConfig(t, "unknown = 1\n"))
	re.True(coderr.Is(err, coderr.InvalidParams), "err:%v", err)

	t.Setenv("DBC_FAIL", "maybe")
	_, err = Load("")
	re.True(coderr.Is(err, coderr.InvalidParams), "err:%v", err)
}

func TestValidateAndAdjust(t *testing.T) {
	re := require.New(t)

	cfg := &Config{}
	re.NoError(cfg.ValidateAndAdjust())
	re.Equal(log.DefaultLogLevel, cfg.Log.Level)
	re.Equal(log.DefaultLogFile, cfg.Log.File)

	cfg.Log.Level = "loud"
	err := cfg.ValidateAndAdjust()
	re.True(coderr.Is(err, coderr.InvalidParams), "err:%v", err)
}
