package serializer

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestParsePG_UniqueViolation(t *testing.T) {
	e := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (email)=(dana@example.com) already exists.",
	}
	status, message, property := parsePG(e)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "A record with email 'dana@example.com' already exists", message)
	assert.Equal(t, "email", property)
}

func TestParsePG_UniqueViolationWithoutDetail(t *testing.T) {
	e := &pgconn.PgError{Code: "23505"}
	status, message, property := parsePG(e)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "A record with this data already exists", message)
	assert.Equal(t, "", property)
}

func TestParsePG_ForeignKeyMissingParent(t *testing.T) {
	e := &pgconn.PgError{
		Code:   "23503",
		Detail: `Key (project_id)=(9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d) is not present in table "projects".`,
	}
	status, message, property := parsePG(e)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "The referenced project_id does not exist", message)
	assert.Equal(t, "project_id", property)
}

func TestParsePG_ForeignKeyStillReferenced(t *testing.T) {
	e := &pgconn.PgError{
		Code:   "23503",
		Detail: `Key (id)=(9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d) is still referenced from table "activities".`,
	}
	status, message, _ := parsePG(e)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cannot delete because it has associated records", message)
}

func TestParsePG_NotNullViolation(t *testing.T) {
	e := &pgconn.PgError{Code: "23502", ColumnName: "name"}
	status, message, property := parsePG(e)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Field 'name' is required", message)
	assert.Equal(t, "name", property)
}

func TestParsePG_CheckViolation(t *testing.T) {
	e := &pgconn.PgError{Code: "23514", ConstraintName: "chk_projects_status"}
	status, message, _ := parsePG(e)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid value for constraint 'chk_projects_status'", message)
}

func TestParsePG_UnknownCodeIsInternal(t *testing.T) {
	e := &pgconn.PgError{Code: "57014"}
	status, message, _ := parsePG(e)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Database error", message)
}

func TestTranslatePG_Envelope(t *testing.T) {
	e := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (email)=(dana@example.com) already exists.",
	}
	res := translatePG("/api/v1/users", e)
	assert.Equal(t, "DatabaseError", res.Error)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "/api/v1/users", res.Path)
	assert.Len(t, res.Details, 1)
	assert.Equal(t, "email", res.Details[0].Property)
}
