// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package config

import (
	"github.com/CeresDB/dbc/pkg/coderr"
)

var (
	ErrInvalidLogLevel = coderr.NewCodeError(coderr.InvalidParams, "invalid log level")
	ErrReadConfigFile  = coderr.NewCodeError(coderr.NotFound, "read config file")
	ErrDecodeConfig    = coderr.NewCodeError(coderr.InvalidParams, "decode config file")
	ErrParseEnv        = coderr.NewCodeError(coderr.InvalidParams, "parse environment variables")
)
