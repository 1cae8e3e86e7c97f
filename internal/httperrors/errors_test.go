package httperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func urlErr(u string, inner error) error {
	return &url.Error{Op: "Post", URL: u, Err: inner}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryNone},
		{"plain error", errors.New("status 500"), CategoryNone},
		{"deadline", urlErr("https://api.test/x", context.DeadlineExceeded), CategoryTimeout},
		{"dns", urlErr("https://api.test/x", &net.DNSError{Err: "no such host", Name: "api.test", IsNotFound: true}), CategoryDNS},
		{
			"refused",
			urlErr("https://api.test/x", &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}),
			CategoryRefused,
		},
		{"tls", urlErr("https://api.test/x", errors.New("tls: failed to verify certificate: x509: unknown authority")), CategoryTLS},
		{"generic", urlErr("https://api.test/x", errors.New("EOF")), CategoryGeneric},
		{"wrapped", fmt.Errorf("register: %w", urlErr("https://api.test/x", errors.New("EOF"))), CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestDescribeNamesHost(t *testing.T) {
	err := urlErr("https://bfhldevapigw.healthrx.co.in/hiring/generateWebhook/JAVA",
		&net.DNSError{Err: "no such host", Name: "bfhldevapigw.healthrx.co.in", IsNotFound: true})

	msg := Describe(err, "registering for a webhook")

	assert.Contains(t, msg, "registering for a webhook")
	assert.Contains(t, msg, "bfhldevapigw.healthrx.co.in")
}

func TestDescribeWithoutURL(t *testing.T) {
	err := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	msg := Describe(err, "submitting the query")

	assert.Contains(t, msg, "Connection refused")
	assert.Contains(t, msg, "the server")
}

func TestFormatNetworkError(t *testing.T) {
	assert.NoError(t, FormatNetworkError(nil, "x"))

	inner := urlErr("https://hook.test/abc", errors.New("EOF"))
	err := FormatNetworkError(inner, "submitting the query")
	assert.ErrorIs(t, err, inner)
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "hook.test:8443", ExtractHostFromURL("https://hook.test:8443/a"))
	assert.Equal(t, "", ExtractHostFromURL("::bad"))
}

func TestDisplayPrintsOnlyNetworkErrors(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	realStdout := os.Stdout
	os.Stdout = w
	pterm.SetDefaultOutput(w)
	t.Cleanup(func() {
		os.Stdout = realStdout
		pterm.SetDefaultOutput(realStdout)
	})

	Display(nil, "registering for a webhook")
	Display(errors.New("registration failed with status 500"), "registering for a webhook")
	Display(urlErr("https://api.test/x", errors.New("EOF")), "submitting the query")
	_ = w.Close()

	out, _ := io.ReadAll(r)
	assert.Equal(t, 1, strings.Count(string(out), "while submitting the query"))
	assert.NotContains(t, string(out), "registering")
}
