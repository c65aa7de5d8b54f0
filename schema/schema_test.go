package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/wspull/errors"
)

const personSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age":  {"type": "number"}
	},
	"required": ["name", "age"]
}`

func TestNewRejectsInvalidSchema(t *testing.T) {
	_, err := New([]byte(`{"type": 42}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidSchema)
}

func TestParseValidPayload(t *testing.T) {
	v, err := New([]byte(personSchema))
	require.NoError(t, err)

	value, err := v.Parse([]byte(`{"name": "Tom", "age": 18}`))
	require.NoError(t, err)

	obj, ok := value.(map[string]any)
	require.True(t, ok, "decoded value should be an object")
	assert.Equal(t, "Tom", obj["name"])
	assert.Equal(t, float64(18), obj["age"])
}

func TestParseSchemaViolation(t *testing.T) {
	v, err := New([]byte(personSchema))
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
	}{
		{"wrong type", `{"name": "Tom", "age": "18"}`},
		{"missing field", `{"name": "Tom"}`},
		{"wrong root type", `["Tom", 18]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := v.Parse([]byte(test.payload))
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err),
				"schema violation must classify as validation error, got: %v", err)
			assert.False(t, errors.IsDecode(err))
		})
	}
}

func TestParseMalformedJSON(t *testing.T) {
	v, err := New([]byte(personSchema))
	require.NoError(t, err)

	_, err = v.Parse([]byte(`{"name": "Tom", "age":`))
	require.Error(t, err)
	assert.True(t, errors.IsDecode(err),
		"malformed JSON must classify as decode error, got: %v", err)
	assert.False(t, errors.IsValidation(err))
}

func TestParseViolationListsAllErrors(t *testing.T) {
	v, err := New([]byte(personSchema))
	require.NoError(t, err)

	_, err = v.Parse([]byte(`{"name": 1, "age": "x"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "age")
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { MustNew([]byte(personSchema)) })
	assert.Panics(t, func() { MustNew([]byte(`{"type": 42}`)) })
}
