package ingest

import (
	"fmt"
	"strings"
)

// SchemaError reports required headers missing from the input. Ingestion
// never proceeds partially when the schema is wrong.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("header mismatch: missing %s; check your column headers",
		strings.Join(e.Missing, ", "))
}

// ImportError reports unparsable or wrong-shape rule bytes. The rule store
// is left untouched when this occurs.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("rule import: %s", e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
