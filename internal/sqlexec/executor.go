// Package sqlexec runs read-only SQL through database/sql and normalizes the result for
// table rendering and JSON output. The MySQL driver is registered on import.
package sqlexec

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// DriverMySQL is the database/sql driver name registered by go-sql-driver/mysql.
const DriverMySQL = "mysql"

// PingTimeout bounds the connectivity check performed by Open.
const PingTimeout = 5 * time.Second

// Result represents a normalized SQL result for JSON marshaling.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// MarshalJSON renders byte slices as strings; drivers return text columns that way.
func (r Result) MarshalJSON() ([]byte, error) {
	type Alias Result
	a := Alias(r)

	if a.Columns == nil {
		a.Columns = []string{}
	}
	rows := make([][]any, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = make([]any, len(row))
		for j, val := range row {
			rows[i][j] = normalize(val)
		}
	}
	a.Rows = rows

	return json.Marshal(a)
}

// Strings returns every cell formatted for display, NULL as "NULL".
func (r Result) Strings() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = make([]string, len(row))
		for j, val := range row {
			switch v := normalize(val).(type) {
			case nil:
				out[i][j] = "NULL"
			case time.Time:
				out[i][j] = v.Format(time.DateTime)
			default:
				out[i][j] = fmt.Sprint(v)
			}
		}
	}
	return out
}

func normalize(val any) any {
	if b, ok := val.([]byte); ok {
		return string(b)
	}
	return val
}

// Executor executes SQL statements against a database/sql pool.
type Executor struct {
	DB *sql.DB
}

// New wraps an existing pool.
func New(db *sql.DB) *Executor {
	return &Executor{DB: db}
}

// Open connects with the given driver and verifies the server answers within PingTimeout.
func Open(ctx context.Context, driver, dsn string) (*Executor, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return New(db), nil
}

// Query runs a single read statement and collects every row.
func (e *Executor) Query(ctx context.Context, query string) (Result, error) {
	res := Result{Columns: []string{}, Rows: [][]any{}}

	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		return res, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return res, err
	}
	res.Columns = cols

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return res, err
		}
		for i, v := range vals {
			// Scan into *any may alias driver buffers.
			if b, ok := v.([]byte); ok {
				vals[i] = append([]byte(nil), b...)
			}
		}
		res.Rows = append(res.Rows, vals)
	}
	return res, rows.Err()
}

// Close releases the pool.
func (e *Executor) Close() error {
	return e.DB.Close()
}
