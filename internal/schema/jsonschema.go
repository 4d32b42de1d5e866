package schema

import (
	"embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFiles embed.FS

// Embedded schema names for the raw-JSON ingestion path.
const (
	CandidateSchema = "candidate"
	JobSchema       = "job"
)

// ValidateDocument validates raw JSON content against one of the embedded
// schemas before it is unmarshaled into a typed record. Returns a
// *SchemaError naming the first offending field, or a *SchemaLoadError
// when the embedded schema itself cannot be loaded.
func ValidateDocument(kind, jsonContent string) error {
	schemaBytes, err := schemaFiles.ReadFile("schemas/" + kind + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Name: kind, Message: "unknown schema", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Name: kind, Message: "validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	desc := result.Errors()[0]
	field := desc.Field()
	if field == "" {
		field = "(root)"
	}
	return &SchemaError{Kind: kind, Field: field, Message: desc.Description()}
}
