package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_AcceptsStringsAndNumbers(t *testing.T) {
	var dst struct {
		Gravity Text `json:"gravity"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"gravity":"1 standard"}`), &dst))
	assert.Equal(t, "1 standard", dst.Gravity.String())

	require.NoError(t, json.Unmarshal([]byte(`{"gravity":0.85}`), &dst))
	assert.Equal(t, Text("0.85"), dst.Gravity)
}

func TestText_RejectsOtherTypes(t *testing.T) {
	payload := map[string]json.RawMessage{"gravity": json.RawMessage(`true`)}
	var dst struct {
		Gravity Text `json:"gravity"`
	}

	err := Decode(payload, &dst)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "gravity", fieldErr.Field)
	assert.Equal(t, "a string", fieldErr.Expected)
}
