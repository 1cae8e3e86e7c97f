// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package workflow runs the webhook task: register, build the query, submit it.
// The steps run once, in order, and the run stops at the first failure. The runner
// returns results and errors only; callers observe progress through StepEvent.
package workflow

import (
	"context"
	"strings"

	"webhooktask/cli/internal/backend"
	taskerrors "webhooktask/cli/internal/errors"
	"webhooktask/cli/internal/query"
)

// Step identifies one stage of a run.
type Step int

const (
	StepRegister Step = iota + 1
	StepGenerateQuery
	StepSubmitQuery
)

func (s Step) String() string {
	switch s {
	case StepRegister:
		return "register"
	case StepGenerateQuery:
		return "generate_query"
	case StepSubmitQuery:
		return "submit_query"
	default:
		return "unknown"
	}
}

// StepEvent is emitted when a step starts (Done false, Err nil), finishes (Done true)
// or fails (Err set). Detail carries a non-secret summary of a finished step.
type StepEvent struct {
	Step   Step
	Done   bool
	Detail string
	Err    error
}

// DefaultIdentity returns the identity registered on every run.
func DefaultIdentity() backend.Identity {
	return backend.Identity{
		Name:  "John Doe",
		RegNo: "REG1613",
		Email: "john@example.com",
	}
}

// Runner executes the workflow against a backend.
type Runner struct {
	api      backend.API
	identity backend.Identity

	// OnStep, when set, receives progress events synchronously.
	OnStep func(StepEvent)
}

// New creates a Runner that registers with identity.
func New(api backend.API, identity backend.Identity) *Runner {
	return &Runner{api: api, identity: identity}
}

// Run performs registration, query generation and submission, and returns the
// webhook's response text. A webhook URL or access token that is empty or only
// whitespace is rejected as an invalid registration response before anything is
// submitted.
func (r *Runner) Run(ctx context.Context) (string, error) {
	r.emit(StepEvent{Step: StepRegister})
	reg, err := r.api.Register(ctx, r.identity)
	if err != nil {
		return "", r.fail(StepRegister, taskerrors.Wrap(taskerrors.RegistrationFailed, "register for webhook", err))
	}
	if strings.TrimSpace(reg.Webhook) == "" {
		return "", r.fail(StepRegister, taskerrors.New(taskerrors.InvalidRegistrationResponse, "invalid webhook URL received"))
	}
	if strings.TrimSpace(reg.AccessToken) == "" {
		return "", r.fail(StepRegister, taskerrors.New(taskerrors.InvalidRegistrationResponse, "invalid access token received"))
	}
	r.emit(StepEvent{Step: StepRegister, Done: true, Detail: reg.Webhook})

	r.emit(StepEvent{Step: StepGenerateQuery})
	sql := query.SingleLine()
	r.emit(StepEvent{Step: StepGenerateQuery, Done: true, Detail: sql})

	r.emit(StepEvent{Step: StepSubmitQuery})
	resp, err := r.api.SubmitQuery(ctx, reg.Webhook, reg.AccessToken, backend.QueryPayload{FinalQuery: sql})
	if err != nil {
		return "", r.fail(StepSubmitQuery, taskerrors.Wrap(taskerrors.WebhookSubmissionFailed, "submit query to webhook", err))
	}
	r.emit(StepEvent{Step: StepSubmitQuery, Done: true, Detail: resp})

	return resp, nil
}

func (r *Runner) emit(ev StepEvent) {
	if r.OnStep != nil {
		r.OnStep(ev)
	}
}

func (r *Runner) fail(step Step, err error) error {
	r.emit(StepEvent{Step: step, Err: err})
	return err
}
