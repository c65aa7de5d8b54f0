package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/c360/wspull/errors"
)

// Validator is a compiled JSON Schema that parses and validates payloads.
// It satisfies the wspull.Validator interface. A Validator is immutable
// after construction and safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// New compiles a JSON Schema document. The schema is compiled once and
// reused for every Parse call.
func New(schemaJSON []byte) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, errors.WrapValidation(
			fmt.Errorf("%w: %v", errors.ErrInvalidSchema, err),
			"Validator", "New", "compile schema")
	}
	return &Validator{schema: schema}, nil
}

// MustNew compiles a JSON Schema document and panics on failure.
// Intended for package-level schema variables that are known valid.
func MustNew(schemaJSON []byte) *Validator {
	v, err := New(schemaJSON)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse validates data against the schema and returns the decoded value.
// Malformed JSON yields a decode-class error; well-formed JSON that fails
// the schema yields a validation-class error listing every violation.
func (v *Validator) Parse(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.WrapDecode(
			fmt.Errorf("%w: %v", errors.ErrDecodeFailed, err),
			"Validator", "Parse", "unmarshal payload")
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, errors.WrapDecode(err, "Validator", "Parse", "load payload")
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return nil, errors.WrapValidation(
			fmt.Errorf("%w: %s", errors.ErrValidationFailed, strings.Join(violations, "; ")),
			"Validator", "Parse", "schema validation")
	}

	return value, nil
}
