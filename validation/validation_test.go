package validation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planetPayload struct {
	Name       string `json:"name" validate:"max=120"`
	Population int64  `json:"population" validate:"gte=0"`
	Gravity    string `json:"gravity"`
}

var planetRequired = []string{"name", "population", "gravity"}

func TestReadObject_RejectsNonObjects(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"blank":     "   \n",
		"array":     `[{"name":"Hoth"}]`,
		"string":    `"Hoth"`,
		"null":      `null`,
		"malformed": `{"name": "Hoth"`,
		"trailing":  `{"name": "Hoth"} {}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadObject(strings.NewReader(body))
			var target *MissingBodyError
			assert.ErrorAs(t, err, &target)
		})
	}

	_, err := ReadObject(nil)
	var target *MissingBodyError
	assert.ErrorAs(t, err, &target)
}

func TestReadObject_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	_, err := ReadObject(strings.NewReader(body))
	var target *MissingBodyError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "body too large", target.Reason)
}

func TestMissingFields_PreservesRequiredOrder(t *testing.T) {
	payload, err := ReadObject(strings.NewReader(`{"gravity": "1", "extra": true}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "population"}, MissingFields(payload, planetRequired))
	assert.Equal(t, []string{"gravity", "name"}, MissingFields(map[string]json.RawMessage{}, []string{"gravity", "name"}))
}

func TestMissingFields_NullCountsAsMissing(t *testing.T) {
	payload, err := ReadObject(strings.NewReader(`{"name": null, "population": 0, "gravity": ""}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, MissingFields(payload, planetRequired))
}

func TestMissingFields_AllPresent(t *testing.T) {
	payload, err := ReadObject(strings.NewReader(`{"name": "Hoth", "population": 0, "gravity": "1.1"}`))
	require.NoError(t, err)

	assert.Empty(t, MissingFields(payload, planetRequired))
}

func TestDecode_TypeMismatchFailsClosed(t *testing.T) {
	payload, err := ReadObject(strings.NewReader(`{"name": "Hoth", "population": "lots", "gravity": "1"}`))
	require.NoError(t, err)

	var dst planetPayload
	err = Decode(payload, &dst)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "population", fieldErr.Field)
	assert.Equal(t, "an integer", fieldErr.Expected)
}

func TestDecode_FractionalIntegerRejected(t *testing.T) {
	payload, err := ReadObject(strings.NewReader(`{"name": "Hoth", "population": 1.5, "gravity": "1"}`))
	require.NoError(t, err)

	var dst planetPayload
	var fieldErr *FieldError
	assert.ErrorAs(t, Decode(payload, &dst), &fieldErr)
}

func TestDecode_RuleViolation(t *testing.T) {
	payload, err := ReadObject(strings.NewReader(`{"name": "Hoth", "population": -3, "gravity": "1"}`))
	require.NoError(t, err)

	var dst planetPayload
	err = Decode(payload, &dst)
	var rules RuleErrors
	require.ErrorAs(t, err, &rules)
	assert.Equal(t, []string{"population"}, rules.Fields())
	assert.Contains(t, rules.Error(), "population must be at least 0")
}

func TestBind(t *testing.T) {
	t.Run("missing fields reported together", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(`{"gravity":"1"}`))
		var dst planetPayload
		err := Bind(r, planetRequired, &dst)

		var missing *MissingFieldsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"name", "population"}, missing.Fields)
		assert.Equal(t, "Missing fields: name, population", missing.Error())
	})

	t.Run("valid payload decoded", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(`{"name":"Hoth","population":0,"gravity":"1.1"}`))
		var dst planetPayload
		require.NoError(t, Bind(r, planetRequired, &dst))
		assert.Equal(t, planetPayload{Name: "Hoth", Population: 0, Gravity: "1.1"}, dst)
	})
}
