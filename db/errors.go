package db

import "fmt"

// QueryError is any failure reported by the underlying store. Callers surface
// Err's text unchanged; Op and Table only feed the logs.
type QueryError struct {
	Op    string
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Describe returns a log-friendly description including the operation.
func (e *QueryError) Describe() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}
