package handlers

import (
	"fmt"
	"strconv"
)

// ValidationError is a client mistake found before the store is touched.
// Key names the message in the i18n catalog.
type ValidationError struct {
	Field string
	Key   string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Key
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func parseID(raw string) (int64, *ValidationError) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "id", Key: "InvalidID", Err: err}
	}
	return id, nil
}
