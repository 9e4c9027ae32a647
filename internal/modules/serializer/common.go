package serializer

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

// SetLogger wires the package logger; called once from the router.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// ErrorDetail is one per-field entry of the error envelope.
type ErrorDetail struct {
	Property string   `json:"property"`
	Errors   []string `json:"errors"`
}

// ErrorsResponse is the uniform error envelope every failure surfaces as.
type ErrorsResponse struct {
	Error   string        `json:"error"`
	Status  int           `json:"status"`
	Path    string        `json:"path"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// WriteError translates any error coming out of the binding, service or
// store layers into the envelope and writes it.
func WriteError(c *gin.Context, err error) {
	res := translate(c.Request.URL.Path, err)
	if res.Status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(res.Status, res)
}

func translate(path string, err error) ErrorsResponse {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return ErrorsResponse{
			Error:  errorName(appErr.Status),
			Status: appErr.Status,
			Path:   path,
			Details: []ErrorDetail{
				{Property: appErr.Property, Errors: []string{appErr.Message}},
			},
		}
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		res := ErrorsResponse{
			Error:  "ValidationFailed",
			Status: http.StatusUnprocessableEntity,
			Path:   path,
		}
		for _, fe := range vErrs {
			res.Details = append(res.Details, ErrorDetail{
				Property: lowerFirst(fe.Field()),
				Errors:   []string{validationMessage(fe)},
			})
		}
		return res
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return translatePG(path, pgErr)
	}

	return ErrorsResponse{
		Error:  "InternalServerError",
		Status: http.StatusInternalServerError,
		Path:   path,
		Details: []ErrorDetail{
			{Property: "", Errors: []string{"Internal server error"}},
		},
	}
}

// WriteBindingError renders malformed request input (unparsable body, wrong
// types, failed binding tags) with per-field detail where available.
func WriteBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		WriteError(c, err)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorsResponse{
		Error:  "BadRequest",
		Status: http.StatusBadRequest,
		Path:   c.Request.URL.Path,
		Details: []ErrorDetail{
			{Property: "", Errors: []string{err.Error()}},
		},
	})
}

func errorName(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusUnprocessableEntity:
		return "ValidationFailed"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusBadRequest:
		return "BadRequest"
	default:
		return "InternalServerError"
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid uuid"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date in format " + fe.Param()
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
