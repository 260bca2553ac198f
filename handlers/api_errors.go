package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/validation"
)

// Error codes carried in APIErrorResponse.Code.
const (
	CodeMissingBody        = "missing_body"
	CodeMissingFields      = "missing_fields"
	CodeInvalidField       = "invalid_field"
	CodeIdentifierMismatch = "identifier_mismatch"
	CodeNotFound           = "not_found"
	CodeMethodNotAllowed   = "method_not_allowed"
	CodeRateLimited        = "rate_limited"
	CodeUnavailable        = "unavailable"
	CodeInternal           = "internal"
)

// APIErrorResponse is the body of every non-2xx JSON response.
type APIErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Fields []string `json:"fields,omitempty"`
}

// APIError is an error that already knows its HTTP status.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func notFound(resource string, id uint64) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %d not found", resource, id),
	}
}

func identifierMismatch(pathID uint64, bodyID uint) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    CodeIdentifierMismatch,
		Message: fmt.Sprintf("user_id %d in body does not match user %d in path", bodyID, pathID),
	}
}

// writeJSON writes data with the given status as application/json.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string, fields []string) {
	writeJSON(w, httpStatus, APIErrorResponse{Error: detail, Code: code, Fields: fields})
}

// writeError maps err to a status code. Anything unclassified is a store or
// programming failure: it is logged with the request and answered with a
// generic 500 so no internal detail leaks.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		apiErr        *APIError
		missingBody   *validation.MissingBodyError
		missingFields *validation.MissingFieldsError
		fieldErr      *validation.FieldError
		ruleErrs      validation.RuleErrors
	)

	switch {
	case errors.As(err, &apiErr):
		WriteAPIError(w, apiErr.Status, apiErr.Code, apiErr.Message, nil)
	case errors.As(err, &missingBody):
		WriteAPIError(w, http.StatusBadRequest, CodeMissingBody, missingBody.Error(), nil)
	case errors.As(err, &missingFields):
		WriteAPIError(w, http.StatusBadRequest, CodeMissingFields, missingFields.Error(), missingFields.Fields)
	case errors.As(err, &fieldErr):
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidField, fieldErr.Error(), []string{fieldErr.Field})
	case errors.As(err, &ruleErrs):
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidField, ruleErrs.Error(), ruleErrs.Fields())
	case errors.Is(err, gorm.ErrRecordNotFound):
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
	case errors.Is(err, context.DeadlineExceeded):
		hlog.FromRequest(r).Warn().Err(err).Msg("request deadline exceeded")
		WriteAPIError(w, http.StatusServiceUnavailable, CodeUnavailable, "The request took too long to complete", nil)
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
	}
}
