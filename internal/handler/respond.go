package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// envelope is the uniform JSON response shape used by every endpoint.
// Success responses carry Message and Data; failures carry Error and,
// for validation failures, the per-field Details list.
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Data    any              `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
	Details []FieldViolation `json:"details,omitempty"`
}

// FieldViolation describes one failed constraint on one payload field.
// Value carries the originally received value and is populated only where an
// endpoint opts in (the visit-report handler, for debuggability).
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

// listPayload is the Data shape for collection endpoints.
type listPayload struct {
	Items      any        `json:"items"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func respondJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// respondCreated writes the 201 envelope with the entity label interpolated
// into the success message.
func respondCreated(w http.ResponseWriter, label string, data any) {
	respondJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: fmt.Sprintf("%s created successfully", label),
		Data:    data,
	})
}

func respondOK(w http.ResponseWriter, message string, data any) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// respondValidation writes the 400 envelope carrying per-field violations.
// Nothing was persisted when this is sent.
func respondValidation(w http.ResponseWriter, details []FieldViolation) {
	respondJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   "Validation failed",
		Details: details,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: false, Error: message})
}

// respondInternal writes the generic 500 envelope. The underlying error is
// logged by the caller, never sent to the client.
func respondInternal(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// parseInt64 parses a decimal query parameter value.
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// decodeJSON decodes the request body into dst. A malformed body is a client
// error; the caller should respond 400 when this returns an error.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// NewValidator builds the validator used by every submission endpoint,
// configured to report field names by their json tag so violation details
// match the wire format the client sent.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// violations converts a validator error into the envelope's details list.
// includeValues controls whether the originally received value is echoed per
// violation.
func violations(err error, includeValues bool) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldViolation{{Field: "", Message: "invalid payload", Code: "invalid"}}
	}

	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		fv := FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
			Code:    fe.Tag(),
		}
		if includeValues {
			fv.Value = fe.Value()
		}
		out = append(out, fv)
	}
	return out
}

// violationMessage renders a human-readable message for the common tags.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date in %s format", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "latitude":
		return fmt.Sprintf("%s must be a valid latitude", fe.Field())
	case "longitude":
		return fmt.Sprintf("%s must be a valid longitude", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s constraint", fe.Field(), fe.Tag())
	}
}
