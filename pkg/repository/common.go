package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// newRetrier makes the backoff used for all writes that can hit a busy database
func newRetrier() *repeater.Repeater {
	return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
}

// jsonList stores a slice as a JSON array in a TEXT column
type jsonList[T any] []T

// Value implements driver.Valuer
func (l jsonList[T]) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]T(l))
	if err != nil {
		return nil, fmt.Errorf("marshal list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *jsonList[T]) Scan(value any) error {
	if value == nil {
		*l = jsonList[T]{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into list", value)
	}
	if len(data) == 0 {
		*l = jsonList[T]{}
		return nil
	}
	var res []T
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("unmarshal list: %w", err)
	}
	*l = res
	return nil
}

// escapeLike escapes LIKE wildcards, patterns built from it must use ESCAPE '\'
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// windowStart converts an optional window in hours to the earliest accepted timestamp
func windowStart(now time.Time, hours *int) *time.Time {
	if hours == nil {
		return nil
	}
	start := now.Add(-time.Duration(*hours) * time.Hour).UTC()
	return &start
}
