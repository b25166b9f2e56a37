// Copyright 2022 CeresDB Project Authors. Licensed under Apache-2.0.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/CeresDB/dbc/example/config"
	"github.com/CeresDB/dbc/pkg/coderr"
	"github.com/CeresDB/dbc/pkg/dbc"
	"github.com/CeresDB/dbc/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagLogFile  = "log-file"
	flagFail     = "fail"
)

type AA struct {
	X int
}

type BB struct {
	A AA
}

// NewRootCmd builds the example command writing its output to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:           "dbc-example",
		Short:         "dbc-example shows the design-by-contract checks in action",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			if _, err := log.InitGlobalLogger(&cfg.Log); err != nil {
				return config.ErrInvalidLogLevel.WithCause(err)
			}
			log.Info("start example", zap.Bool("fail", cfg.Fail), zap.Bool("checks-enabled", dbc.Enabled()))
			run(out, cfg.Fail)
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.String(flagConfig, "", "path of the toml config file")
	flags.String(flagLogLevel, "", "level of the log")
	flags.String(flagLogFile, "", "file for log output")
	flags.Bool(flagFail, true, "end with a violated precondition")
	for _, name := range []string{flagConfig, flagLogLevel, flagLogFile, flagFail} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.CompletionOptions = cobra.CompletionOptions{
		DisableDefaultCmd: true,
	}
	return rootCmd
}

// loadConfig resolves the config file and environment, then applies the flags
// set on the command line.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v.GetString(flagConfig))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = v.GetString(flagLogLevel)
	}
	if flags.Changed(flagLogFile) {
		cfg.Log.File = v.GetString(flagLogFile)
	}
	if flags.Changed(flagFail) {
		cfg.Fail = v.GetBool(flagFail)
	}

	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(out io.Writer, fail bool) {
	a := 34
	b := BB{A: AA{X: 234}}
	msg := "My message"

	fmt.Fprintln(out, dbc.Formatvar(a))
	fmt.Fprintln(out, dbc.Formatvar(b))
	fmt.Fprintln(out, dbc.Formatvar(msg, a, b))

	dbc.Require(true)
	if !fail {
		return
	}

	a = 3
	dbc.Require(false, "This is a test", a)
}

// Execute runs the example. This is called by main.main().
func Execute() {
	err := NewRootCmd(os.Stdout).Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		code, ok := coderr.GetCauseCode(err)
		if !ok {
			code = coderr.InvalidParams
		}
		os.Exit(code.ToExitCode())
	}
}
