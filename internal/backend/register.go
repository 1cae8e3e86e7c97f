// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Register calls POST <registrationURL> with the identity as JSON.
// Any 2xx response with a JSON object body is decoded into a Registration; empty fields are
// returned as-is and left for the caller to judge. Everything else is a *RegistrationError.
func (h *HTTP) Register(ctx context.Context, identity Identity) (Registration, error) {
	var out Registration

	body, err := json.Marshal(identity)
	if err != nil {
		return out, &RegistrationError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.registrationURL, bytes.NewReader(body))
	if err != nil {
		return out, &RegistrationError{Err: err}
	}
	h.setStandardHeaders(req)
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return out, &RegistrationError{Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &RegistrationError{StatusCode: resp.StatusCode, Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return out, &RegistrationError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if strings.TrimSpace(string(b)) == "" {
		return out, &RegistrationError{StatusCode: resp.StatusCode, Err: errors.New("empty response body")}
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return Registration{}, &RegistrationError{StatusCode: resp.StatusCode, Err: err}
	}
	return out, nil
}
