package preview

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "invalid_argument"
	CodeNotFound        ErrorCode = "not_found"
	CodeInternal        ErrorCode = "internal"
)

// Error is the JSON error envelope.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf creates an Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an ErrorCode to an HTTP status code.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// toError maps errors from decoding and generation to an Error.
func toError(err error) *Error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		details := make(map[string]any, len(valErrs))
		messages := make([]string, 0, len(valErrs))
		for _, fe := range valErrs {
			msg := formatValidationError(fe)
			details[fe.Field()] = msg
			messages = append(messages, fe.Field()+": "+msg)
		}
		return &Error{
			Code:    CodeInvalidArgument,
			Message: strings.Join(messages, "; "),
			Details: details,
		}
	}

	var multi schema.MultiError
	if errors.As(err, &multi) {
		details := make(map[string]any, len(multi))
		for field, e := range multi {
			details[field] = e.Error()
		}
		return &Error{Code: CodeInvalidArgument, Message: "invalid query: " + multi.Error(), Details: details}
	}

	switch {
	case errors.Is(err, model.ErrUnknownServiceMethod):
		return &Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, model.ErrModelNotFound):
		return &Error{Code: CodeNotFound, Message: err.Error()}
	}

	return &Error{Code: CodeInternal, Message: err.Error()}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(fe validator.FieldError) string {
	if fe.Tag() == "contains" {
		return fmt.Sprintf("must contain %q", fe.Param())
	}
	return model.FormatFieldError(fe)
}

func writeError(w http.ResponseWriter, svcErr *Error, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(svcErr.Code.HTTPStatus())
	if err := json.NewEncoder(w).Encode(svcErr); err != nil {
		logger.Error("failed to encode error response",
			slog.String("code", string(svcErr.Code)),
			slog.String("message", svcErr.Message),
			slog.Any("error", err))
	}
}
