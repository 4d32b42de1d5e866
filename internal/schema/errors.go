package schema

import "fmt"

// SchemaError reports a malformed or missing required field on a record
// entering the pipeline. It is local to one record and never aborts a
// batch ranking.
type SchemaError struct {
	Kind    string // "candidate" or "job"
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s schema error in %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s schema error: %s", e.Kind, e.Message)
}

// SchemaLoadError reports a failure loading or parsing an embedded JSON
// Schema document, as opposed to a validation failure of the instance.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}
