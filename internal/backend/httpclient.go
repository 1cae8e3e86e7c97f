package backend

import (
	"net/http"
	"strings"
	"time"
)

// RegistrationURL is the hiring endpoint that issues the webhook URL and access token.
const RegistrationURL = "https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA"

// HTTP implements API over REST endpoints.
type HTTP struct {
	// registrationURL is where Register posts the identity
	registrationURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// userAgent is sent with every request
	userAgent string
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the default client, e.g. to install a test transport.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) {
		if strings.TrimSpace(ua) != "" {
			h.userAgent = ua
		}
	}
}

// New creates an HTTP backend that registers at registrationURL.
// It configures a 30-second timeout for all requests unless a client is supplied.
func New(registrationURL string, opts ...Option) *HTTP {
	h := &HTTP{
		registrationURL: strings.TrimSpace(registrationURL),
		client:          &http.Client{Timeout: 30 * time.Second},
		userAgent:       "webhooktask-cli",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// setStandardHeaders adds headers shared by every request.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Content-Type", "application/json")
}

// isSuccess reports whether code is in the 2xx range.
func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
