// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package config

import (
	"bytes"
	"os"

	"github.com/CeresDB/dbc/pkg/log"
	"github.com/caarlos0/env/v6"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DBC_"

// Config is the configuration of the example program.
//
// Values are resolved in order: defaults, the toml file, the environment.
// Command line flags are applied on top by the caller.
type Config struct {
	Log log.Config `toml:"log" envPrefix:"LOG_"`

	// Fail makes the example end with a violated precondition.
	Fail bool `toml:"fail" env:"FAIL"`
}

func Default() *Config {
	return &Config{
		Log: log.Config{
			Level: log.DefaultLogLevel,
			File:  log.DefaultLogFile,
		},
		Fail: true,
	}
}

// Load builds the config from the defaults, the toml file at path (skipped
// if path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ErrReadConfigFile.WithCause(err)
		}
		decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return nil, ErrDecodeConfig.WithCausef("path:%s, err:%v", path, err)
		}
	}

	if err := env.Parse(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, ErrParseEnv.WithCause(err)
	}

	return cfg, nil
}

func (c *Config) ValidateAndAdjust() error {
	if len(c.Log.Level) == 0 {
		c.Log.Level = log.DefaultLogLevel
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return ErrInvalidLogLevel.WithCause(err)
	}
	if len(c.Log.File) == 0 {
		c.Log.File = log.DefaultLogFile
	}
	return nil
}
