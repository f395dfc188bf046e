package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/redact"
)

// ProblemContentType is the media type of validation problem responses.
const ProblemContentType = "application/problem+json"

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// ProblemDetail is one entry of a validation problem.
type ProblemDetail struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationProblem is the body returned when a request or the document it
// produces fails validation.
type ValidationProblem struct {
	Type    string          `json:"type"`
	Title   string          `json:"title"`
	Status  int             `json:"status"`
	TraceID string          `json:"traceId,omitempty"`
	Errors  []ProblemDetail `json:"errors"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, r, "application/json", status, data)
}

func writeJSON(w http.ResponseWriter, r *http.Request, contentType string, status int, data any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a JSON error response carrying only
// userMessage and logs the redacted err. 5xx responses are logged at ERROR,
// everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			redact.ErrorAttr(err),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithValidationProblem writes a problem document listing every
// detail, in order.
func RespondWithValidationProblem(w http.ResponseWriter, r *http.Request, status int, details []ProblemDetail) {
	if details == nil {
		details = []ProblemDetail{}
	}

	logger.FromContext(r.Context()).Debug("validation problem response",
		"status_code", status,
		"violations", len(details),
		"path", r.URL.Path)

	writeJSON(w, r, ProblemContentType, status, ValidationProblem{
		Type:    "https://tools.ietf.org/html/rfc7231#section-6.5.1",
		Title:   "One or more validation errors occurred.",
		Status:  status,
		TraceID: GetTraceID(r.Context()),
		Errors:  details,
	})
}
