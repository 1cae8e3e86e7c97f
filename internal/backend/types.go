// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"fmt"
	"strings"
)

// Identity is the registration request body.
type Identity struct {
	Name  string `json:"name"`
	RegNo string `json:"regNo"`
	Email string `json:"email"`
}

// Registration is the registration response body.
type Registration struct {
	Webhook     string `json:"webhook"`
	AccessToken string `json:"accessToken"`
}

// QueryPayload is the webhook request body.
type QueryPayload struct {
	FinalQuery string `json:"finalQuery"`
}

// RegistrationError reports a failed registration call.
// StatusCode is zero when no HTTP response was received.
type RegistrationError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RegistrationError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("registration request failed: %v", e.Err)
	case e.Err != nil:
		return fmt.Sprintf("registration failed with status %d: %v", e.StatusCode, e.Err)
	case strings.TrimSpace(e.Body) != "":
		return fmt.Sprintf("registration failed with status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
	default:
		return fmt.Sprintf("registration failed with status %d", e.StatusCode)
	}
}

func (e *RegistrationError) Unwrap() error { return e.Err }

// WebhookError reports a failed query submission.
// StatusCode is zero when no HTTP response was received.
type WebhookError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *WebhookError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("webhook request failed: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("webhook responded %d %s: %v", e.StatusCode, e.Status, e.Err)
	}
	return fmt.Sprintf("webhook responded %d %s", e.StatusCode, e.Status)
}

func (e *WebhookError) Unwrap() error { return e.Err }
