// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"webhooktask/cli/internal/backend"
	taskerrors "webhooktask/cli/internal/errors"
	"webhooktask/cli/internal/httperrors"
	"webhooktask/cli/internal/logging"
	"webhooktask/cli/internal/progress"
	"webhooktask/cli/internal/terminal"
	"webhooktask/cli/internal/workflow"
)

// runWorkflow wires the production backend and renderer and runs the task once.
func runWorkflow(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	api := backend.New(backend.RegistrationURL, backend.WithUserAgent(userAgent()))
	interactive := s.console() && terminal.IsInteractive(os.Stderr)
	renderer := progress.NewRenderer(s.log, interactive, terminal.Width(os.Stderr))

	return executeRun(cmd.Context(), s, api, renderer, cmd.OutOrStdout())
}

// executeRun runs the workflow unless disabled and prints the webhook response to out.
func executeRun(ctx context.Context, s settings, api backend.API, renderer *progress.Renderer, out io.Writer) error {
	if !s.cfg.Enabled {
		s.log.Info().Msg("webhook task is disabled, skipping run")
		return nil
	}

	runner := workflow.New(api, workflow.DefaultIdentity())
	runner.OnStep = renderer.Render

	start := time.Now()
	resp, err := runner.Run(ctx)
	renderer.Close()

	if err != nil {
		logFailure(s.log, err, time.Since(start))
		httperrors.Display(err, actionFor(err))
		return err
	}

	s.log.Info().Dur("elapsed", time.Since(start)).Msg("webhook task completed")
	printResponse(out, resp)
	return nil
}

func logFailure(log zerolog.Logger, err error, elapsed time.Duration) {
	ev := log.Error().Dur("elapsed", elapsed).Str("error", logging.Mask(err.Error()))
	if kind, ok := taskerrors.KindOf(err); ok {
		ev = ev.Str("kind", string(kind))
	}
	ev.Msg("webhook task failed")
}

// actionFor names what was being attempted when err occurred.
func actionFor(err error) string {
	if taskerrors.HasKind(err, taskerrors.WebhookSubmissionFailed) {
		return "submitting the query to the webhook"
	}
	return "registering for a webhook"
}
