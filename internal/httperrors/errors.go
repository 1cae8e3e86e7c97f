// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for HTTP requests.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category classifies a transport failure for display.
type Category int

const (
	CategoryNone Category = iota
	CategoryTimeout
	CategoryDNS
	CategoryRefused
	CategoryTLS
	CategoryGeneric
)

// IsNetworkError reports whether err came from the transport rather than an HTTP status.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Classify picks the category used to explain err. Non-network errors are CategoryNone.
func Classify(err error) Category {
	if !IsNetworkError(err) {
		return CategoryNone
	}
	switch {
	case isTimeoutError(err):
		return CategoryTimeout
	case isDNSError(err):
		return CategoryDNS
	case isConnectionRefusedError(err):
		return CategoryRefused
	case isSSLError(err):
		return CategoryTLS
	default:
		return CategoryGeneric
	}
}

// FormatNetworkError prints a troubleshooting message for err and returns it wrapped.
// action describes what was being attempted, e.g. "registering for a webhook".
func FormatNetworkError(err error, action string) error {
	if err == nil {
		return nil
	}

	Display(err, action)

	return fmt.Errorf("network error: %w", err)
}

// Display prints the troubleshooting message for a network error and nothing otherwise.
func Display(err error, action string) {
	if !IsNetworkError(err) {
		return
	}
	pterm.Println(Describe(err, action))
}

// Describe renders the troubleshooting text for err without printing it.
func Describe(err error, action string) string {
	host := hostOf(err)
	var b strings.Builder

	switch Classify(err) {
	case CategoryTimeout:
		fmt.Fprintf(&b, "⏱️  Connection timeout while %s\n\n", action)
		fmt.Fprintf(&b, "%s took too long to respond. This could mean:\n", host)
		b.WriteString("  • Slow internet connection\n")
		b.WriteString("  • Server is under heavy load\n")
		b.WriteString("  • Network firewall is blocking the connection\n\n")
		b.WriteString("Please try again in a few moments.\n")
	case CategoryDNS:
		fmt.Fprintf(&b, "🌐 Cannot resolve server address while %s\n\n", action)
		fmt.Fprintf(&b, "Unable to look up %s. Please check:\n", host)
		b.WriteString("  • Your internet connection is working\n")
		b.WriteString("  • DNS settings are correct\n")
		b.WriteString("  • No DNS-level blocking (corporate firewall, proxy)\n")
	case CategoryRefused:
		fmt.Fprintf(&b, "🚫 Connection refused while %s\n\n", action)
		fmt.Fprintf(&b, "%s is not accepting connections. This could mean:\n", host)
		b.WriteString("  • The service is temporarily down\n")
		b.WriteString("  • Firewall is blocking the connection\n")
		b.WriteString("  • Wrong server address or port\n")
	case CategoryTLS:
		fmt.Fprintf(&b, "🔒 Secure connection failed while %s\n\n", action)
		fmt.Fprintf(&b, "Cannot establish a secure HTTPS connection to %s. This could mean:\n", host)
		b.WriteString("  • SSL/TLS certificate issue\n")
		b.WriteString("  • Network proxy interfering with HTTPS\n")
		b.WriteString("  • System clock is incorrect\n")
	default:
		fmt.Fprintf(&b, "❌ Cannot reach %s while %s\n\n", host, action)
		b.WriteString("Please check:\n")
		b.WriteString("  • Your internet connection\n")
		fmt.Fprintf(&b, "  • Whether %s is accessible from your network\n", host)
		b.WriteString("  • Firewall settings that might block HTTPS requests\n")
	}

	return b.String()
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// hostOf names the host a *url.Error was talking to, or "the server".
func hostOf(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if h := ExtractHostFromURL(urlErr.URL); h != "" {
			return h
		}
	}
	return "the server"
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
