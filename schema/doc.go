// Package schema provides a JSON Schema validator for checked reads.
//
// The Validator compiles a schema document once and exposes the single
// Parse(data) operation the wspull read path expects: it returns the
// decoded value when the payload satisfies the schema, a decode-class
// error when the payload is not JSON at all, and a validation-class error
// (listing every violation) when the payload is well-formed but
// non-conforming.
//
// Usage:
//
//	v, err := schema.New([]byte(`{
//	    "type": "object",
//	    "properties": {
//	        "name": {"type": "string"},
//	        "age":  {"type": "number"}
//	    },
//	    "required": ["name", "age"]
//	}`))
//
//	value, err := conn.ReadValidated(ctx, v)
//
// Validation is backed by github.com/xeipuuv/gojsonschema. Any type whose
// Parse method has the same shape can stand in for a Validator; the core
// does not depend on this package.
package schema
