package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webhooktask/cli/internal/backend"
	taskerrors "webhooktask/cli/internal/errors"
	"webhooktask/cli/internal/query"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	reg       backend.Registration
	regErr    error
	resp      string
	submitErr error

	registered backend.Identity
	submitted  []submission
}

type submission struct {
	url, token string
	payload    backend.QueryPayload
}

func (f *fakeAPI) Register(ctx context.Context, identity backend.Identity) (backend.Registration, error) {
	f.registered = identity
	return f.reg, f.regErr
}

func (f *fakeAPI) SubmitQuery(ctx context.Context, url, token string, payload backend.QueryPayload) (string, error) {
	f.submitted = append(f.submitted, submission{url: url, token: token, payload: payload})
	return f.resp, f.submitErr
}

func TestRun_Success(t *testing.T) {
	api := &fakeAPI{
		reg:  backend.Registration{Webhook: "https://hook.test/abc", AccessToken: "tok123"},
		resp: "OK",
	}

	resp, err := New(api, DefaultIdentity()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "OK", resp)
	assert.Equal(t, DefaultIdentity(), api.registered)
	require.Len(t, api.submitted, 1)
	assert.Equal(t, "https://hook.test/abc", api.submitted[0].url)
	assert.Equal(t, "tok123", api.submitted[0].token)
	assert.Equal(t, query.SingleLine(), api.submitted[0].payload.FinalQuery)
}

func TestRun_RegistrationError(t *testing.T) {
	cause := &backend.RegistrationError{StatusCode: 500, Body: "boom"}
	api := &fakeAPI{regErr: cause}

	_, err := New(api, DefaultIdentity()).Run(context.Background())

	require.Error(t, err)
	assert.True(t, taskerrors.HasKind(err, taskerrors.RegistrationFailed))
	var regErr *backend.RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, 500, regErr.StatusCode)
	assert.Empty(t, api.submitted, "no submission after failed registration")
}

func TestRun_InvalidRegistrationResponse(t *testing.T) {
	tests := []struct {
		name string
		reg  backend.Registration
	}{
		{name: "empty webhook", reg: backend.Registration{Webhook: "", AccessToken: "abc"}},
		{name: "blank webhook", reg: backend.Registration{Webhook: "   ", AccessToken: "abc"}},
		{name: "empty token", reg: backend.Registration{Webhook: "https://x/y", AccessToken: ""}},
		{name: "blank token", reg: backend.Registration{Webhook: "https://x/y", AccessToken: "\t "}},
		{name: "both empty", reg: backend.Registration{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{reg: tt.reg}

			_, err := New(api, DefaultIdentity()).Run(context.Background())

			require.Error(t, err)
			assert.True(t, taskerrors.HasKind(err, taskerrors.InvalidRegistrationResponse), "got %v", err)
			assert.Empty(t, api.submitted)
		})
	}
}

func TestRun_WebhookError(t *testing.T) {
	api := &fakeAPI{
		reg:       backend.Registration{Webhook: "https://x/y", AccessToken: "abc"},
		submitErr: &backend.WebhookError{StatusCode: 403, Status: "Forbidden"},
	}

	_, err := New(api, DefaultIdentity()).Run(context.Background())

	require.Error(t, err)
	assert.True(t, taskerrors.HasKind(err, taskerrors.WebhookSubmissionFailed))
	var whErr *backend.WebhookError
	require.True(t, errors.As(err, &whErr))
	assert.Equal(t, 403, whErr.StatusCode)
}

func TestRun_StepEvents(t *testing.T) {
	api := &fakeAPI{
		reg:  backend.Registration{Webhook: "https://x/y", AccessToken: "abc"},
		resp: "OK",
	}
	var events []StepEvent
	r := New(api, DefaultIdentity())
	r.OnStep = func(ev StepEvent) { events = append(events, ev) }

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 6)
	wantSteps := []Step{StepRegister, StepRegister, StepGenerateQuery, StepGenerateQuery, StepSubmitQuery, StepSubmitQuery}
	for i, ev := range events {
		assert.Equal(t, wantSteps[i], ev.Step, "event %d", i)
		assert.Equal(t, i%2 == 1, ev.Done, "event %d", i)
		assert.NoError(t, ev.Err)
	}
	assert.Equal(t, "https://x/y", events[1].Detail)
	assert.Equal(t, query.SingleLine(), events[3].Detail)
	assert.Equal(t, "OK", events[5].Detail)
	for _, ev := range events {
		assert.NotContains(t, ev.Detail, "abc", "access token must not appear in step details")
	}
}

func TestRun_FailureEvent(t *testing.T) {
	api := &fakeAPI{regErr: &backend.RegistrationError{StatusCode: 502}}
	var last StepEvent
	r := New(api, DefaultIdentity())
	r.OnStep = func(ev StepEvent) { last = ev }

	_, err := r.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, StepRegister, last.Step)
	assert.False(t, last.Done)
	assert.Equal(t, err, last.Err)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "register", StepRegister.String())
	assert.Equal(t, "generate_query", StepGenerateQuery.String())
	assert.Equal(t, "submit_query", StepSubmitQuery.String())
	assert.Equal(t, "unknown", Step(0).String())
}
