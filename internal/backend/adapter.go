// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the hiring
// endpoints the webhook task depends on. It defines the API contract for registration and
// query submission, and an HTTP-based implementation of it.
package backend

import "context"

// API defines backend operations the workflow depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// Register posts the identity to the registration endpoint and returns the
	// webhook URL and access token it issues.
	Register(ctx context.Context, identity Identity) (Registration, error)
	// SubmitQuery posts the payload to webhookURL with accessToken as a bearer
	// credential and returns the raw response text.
	SubmitQuery(ctx context.Context, webhookURL, accessToken string, payload QueryPayload) (string, error)
}
