// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"webhooktask/cli/internal/config"
	taskerrors "webhooktask/cli/internal/errors"
	"webhooktask/cli/internal/logger"
)

// settings is the resolved configuration and logger for one command invocation.
type settings struct {
	cfg   config.Config
	log   zerolog.Logger
	runID string
}

// console reports whether logs are human-readable, the only mode spinners are drawn in.
func (s settings) console() bool {
	f := strings.ToLower(strings.TrimSpace(s.cfg.Log.Format))
	return f == "" || f == logger.FormatConsole
}

// loadSettings layers command-line flags over config.Load, validates the result once
// and builds the run logger.
func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("enabled") {
		cfg.Enabled = enabledFlag
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, taskerrors.Wrap(taskerrors.ConfigInvalid, "validate config", err)
	}

	log, err := logger.New(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return settings{}, taskerrors.Wrap(taskerrors.ConfigInvalid, "build logger", err)
	}

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Str("cmd", cmd.Name()).Logger()

	return settings{cfg: cfg, log: log, runID: runID}, nil
}
