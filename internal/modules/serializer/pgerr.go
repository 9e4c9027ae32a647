package serializer

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Key (column)=(value) as emitted in postgres constraint error details.
var (
	keyFieldRe = regexp.MustCompile(`Key \((\w+)\)=`)
	keyValueRe = regexp.MustCompile(`Key \(\w+\)=\(([^)]+)\)`)
)

// translatePG maps postgres constraint violations onto the error envelope:
// unique -> 409, foreign key / not null / check -> 400, anything else -> 500.
// The offending field name is best-effort extracted from the error detail.
func translatePG(path string, e *pgconn.PgError) ErrorsResponse {
	status, message, property := parsePG(e)
	return ErrorsResponse{
		Error:  "DatabaseError",
		Status: status,
		Path:   path,
		Details: []ErrorDetail{
			{Property: property, Errors: []string{message}},
		},
	}
}

func parsePG(e *pgconn.PgError) (int, string, string) {
	switch e.Code {
	case pgUniqueViolation:
		return http.StatusConflict, uniqueMessage(e), fieldFromDetail(e.Detail)

	case pgForeignKeyViolation:
		return http.StatusBadRequest, foreignKeyMessage(e), fieldFromDetail(e.Detail)

	case pgNotNullViolation:
		return http.StatusBadRequest, fmt.Sprintf("Field '%s' is required", e.ColumnName), e.ColumnName

	case pgCheckViolation:
		return http.StatusBadRequest, fmt.Sprintf("Invalid value for constraint '%s'", e.ConstraintName), ""

	default:
		return http.StatusInternalServerError, "Database error", ""
	}
}

func uniqueMessage(e *pgconn.PgError) string {
	field := fieldFromDetail(e.Detail)
	value := valueFromDetail(e.Detail)

	if field != "" && value != "" {
		return fmt.Sprintf("A record with %s '%s' already exists", field, value)
	}
	if field != "" {
		return fmt.Sprintf("The value of '%s' is already in use", field)
	}
	return "A record with this data already exists"
}

func foreignKeyMessage(e *pgconn.PgError) string {
	field := fieldFromDetail(e.Detail)

	if strings.Contains(e.Detail, "is not present") {
		if field == "" {
			field = "record"
		}
		return fmt.Sprintf("The referenced %s does not exist", field)
	}
	if strings.Contains(e.Detail, "is still referenced") {
		return "Cannot delete because it has associated records"
	}
	return "Database reference error"
}

func fieldFromDetail(detail string) string {
	m := keyFieldRe.FindStringSubmatch(detail)
	if m == nil {
		return ""
	}
	return m[1]
}

func valueFromDetail(detail string) string {
	m := keyValueRe.FindStringSubmatch(detail)
	if m == nil {
		return ""
	}
	return m[1]
}
