package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEvent_Valid(t *testing.T) {
	events := []string{
		`{"type":"login","role":"student","identity":"student@college.edu","secret":"student123"}`,
		`{"type":"logout"}`,
		`{"type":"navigate","section":"jobManagement"}`,
		`{"type":"chat","text":"hi","surface":"modal"}`,
		`{"type":"upload_resume","name":"cv.pdf","size":2048}`,
		`{"type":"update_academic","cgpa":"9.1"}`,
		`{"type":"mark_read","id":1}`,
		`{"type":"post_job","title":"SRE","draft":true}`,
	}
	for _, e := range events {
		assert.NoError(t, ValidateEvent([]byte(e)), e)
	}
}

func TestValidateEvent_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		event string
	}{
		{name: "missing type", event: `{"section":"jobs"}`},
		{name: "unknown type", event: `{"type":"teleport"}`},
		{name: "login without secret", event: `{"type":"login","role":"student","identity":"x"}`},
		{name: "unknown role", event: `{"type":"login","role":"alumni","identity":"x","secret":"y"}`},
		{name: "unknown section", event: `{"type":"navigate","section":"billing"}`},
		{name: "negative size", event: `{"type":"upload_resume","name":"cv.pdf","size":-1}`},
		{name: "bad surface", event: `{"type":"chat","text":"hi","surface":"sidebar"}`},
		{name: "string id", event: `{"type":"mark_read","id":"1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvent([]byte(tt.event))
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateEvent_MalformedJSON(t *testing.T) {
	err := ValidateEvent([]byte(`{"type":`))
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))

	err := ValidateJSONString(schema, `{}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
