// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"fmt"
	"net"
)

// DBType is the database family a DSN points at. Only MySQL is resolved; the
// others are detected so they can be rejected with a useful hint.
type DBType string

const (
	DBTypePostgreSQL DBType = "postgresql"
	DBTypeMySQL      DBType = "mysql"
	DBTypeOracle     DBType = "oracle"
	DBTypeUnknown    DBType = "unknown"
)

// DSNInfo holds the parts of a MySQL connection string, whichever form it came in.
type DSNInfo struct {
	Type DBType
	// Net is the driver network: "tcp" or "unix".
	Net string
	// Host is a hostname, or the socket path when Net is "unix".
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// Params are driver parameters from the query string.
	Params map[string]string
	// Original is the DSN exactly as supplied; it may contain a password.
	Original string
}

// String returns the DSN as it was supplied.
func (d *DSNInfo) String() string {
	return d.Original
}

// Address is the driver address: host:port for tcp, the socket path for unix.
func (d *DSNInfo) Address() string {
	if d.Net == "unix" {
		return d.Host
	}
	port := d.Port
	if port == "" {
		port = defaultMySQLPort
	}
	return net.JoinHostPort(d.Host, port)
}

// Resolver parses and renders DSNs for one database family.
type Resolver interface {
	// Parse splits a DSN into its parts.
	Parse(dsn string) (*DSNInfo, error)

	// Normalize renders parsed parts as a DSN the database/sql driver accepts.
	Normalize(info *DSNInfo) (string, error)

	// Validate reports whether dsn is usable without rendering it.
	Validate(dsn string) error
}

// ParseError explains why a DSN was rejected and how to write it instead.
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid DSN format: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid DSN format: %s", e.Reason)
}

// NewParseError creates a new ParseError
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{
		DSN:    dsn,
		Reason: reason,
		Hint:   hint,
	}
}
