// Package validation checks request payloads before any store access.
//
// A payload goes through three steps, each with its own error type:
//  1. ReadObject: the body must be a JSON object (MissingBodyError).
//  2. MissingFields: every required key must be present and non-null
//     (MissingFieldsError, listing all of them in declaration order).
//  3. Decode: values must have the right JSON type (FieldError) and satisfy
//     the struct's `validate` tags (RuleErrors).
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes bounds how much of a request body is read.
const MaxBodyBytes = 1 << 20

// MissingBodyError means the request carried no parseable JSON object.
type MissingBodyError struct {
	Reason string
}

func (e *MissingBodyError) Error() string {
	return "request body must be a JSON object: " + e.Reason
}

// MissingFieldsError lists every absent required field.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing fields: " + strings.Join(e.Fields, ", ")
}

// FieldError reports a value of the wrong JSON type.
type FieldError struct {
	Field    string
	Expected string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s must be %s", e.Field, e.Expected)
}

// RuleError is a single failed `validate` tag.
type RuleError struct {
	Field   string
	Message string
}

// RuleErrors is returned when decoded values break a validation rule.
type RuleErrors []RuleError

func (e RuleErrors) Error() string {
	parts := make([]string, len(e))
	for i, r := range e {
		parts[i] = r.Field + " " + r.Message
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Fields returns the offending field names in order.
func (e RuleErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, r := range e {
		fields[i] = r.Field
	}
	return fields
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report JSON names rather than Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ReadObject reads body as a JSON object keyed by field name.
func ReadObject(body io.Reader) (map[string]json.RawMessage, error) {
	if body == nil {
		return nil, &MissingBodyError{Reason: "empty body"}
	}
	raw, err := io.ReadAll(io.LimitReader(body, MaxBodyBytes+1))
	if err != nil {
		return nil, &MissingBodyError{Reason: "unreadable body"}
	}
	if len(raw) > MaxBodyBytes {
		return nil, &MissingBodyError{Reason: "body too large"}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, &MissingBodyError{Reason: "empty body"}
	}
	if raw[0] != '{' {
		return nil, &MissingBodyError{Reason: "not an object"}
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &MissingBodyError{Reason: "malformed JSON"}
	}
	return payload, nil
}

// MissingFields returns the names in required that payload lacks, keeping
// the order of required. A key explicitly set to null counts as missing.
func MissingFields(payload map[string]json.RawMessage, required []string) []string {
	var missing []string
	for _, field := range required {
		value, ok := payload[field]
		if !ok || isNull(value) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isNull(value json.RawMessage) bool {
	return len(value) == 0 || string(bytes.TrimSpace(value)) == "null"
}

// Decode converts payload into dst (a pointer to a struct with json tags) and
// runs its `validate` tags.
func Decode(payload map[string]json.RawMessage, dst interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("re-encoding payload: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &FieldError{Field: typeErr.Field, Expected: describeKind(typeErr.Type)}
		}
		return &MissingBodyError{Reason: "malformed JSON"}
	}

	if err := instance().Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return toRuleErrors(verrs)
		}
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}

// Bind runs ReadObject, MissingFields and Decode against r's body.
func Bind(r *http.Request, required []string, dst interface{}) error {
	payload, err := ReadObject(r.Body)
	if err != nil {
		return err
	}
	if missing := MissingFields(payload, required); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return Decode(payload, dst)
}

func toRuleErrors(verrs validator.ValidationErrors) RuleErrors {
	out := make(RuleErrors, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "gte":
			msg = "must be at least " + fe.Param()
		case "gt":
			msg = "must be greater than " + fe.Param()
		case "max":
			msg = "must not exceed " + fe.Param() + " characters"
		default:
			msg = "failed " + fe.Tag()
		}
		out = append(out, RuleError{Field: fe.Field(), Message: msg})
	}
	return out
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a " + t.Kind().String()
	}
}
