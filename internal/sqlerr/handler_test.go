package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/opendirectory/providerdir/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %T, want *errs.HTTPError", err)
	}
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "person",
		ConstraintName: "person_username_key",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "PERSON_ALREADY_EXISTS" {
		t.Errorf("code = %q, want PERSON_ALREADY_EXISTS", httpErr.Code)
	}
	if !httpErr.Override {
		t.Error("unique violation message should be safe to display")
	}
	if httpErr.Message != "A Person with this Username already exists" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "item",
		ColumnName: "provider_id",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "ITEM_NOT_FOUND" {
		t.Errorf("code = %q, want ITEM_NOT_FOUND", httpErr.Code)
	}
	if httpErr.Message != "The referenced Provider does not exist" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "provider",
		ColumnName: "phone_number",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 {
		t.Fatalf("field errors = %d, want 1", len(httpErr.Errors))
	}
	if httpErr.Errors[0].Field != "phone_number" {
		t.Errorf("field = %q, want phone_number", httpErr.Errors[0].Field)
	}
}

func TestHandleErrorUnknownSQLState(t *testing.T) {
	// Anything outside the mapped violation classes must stay opaque.
	err := HandleError(&pgconn.PgError{
		Code:     "42883",
		Severity: "ERROR",
		Message:  "function sp_nope() does not exist",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Status)
	}
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("internal detail leaked into message: %q", httpErr.Message)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
}

func TestHandleErrorAnnotatedNoRows(t *testing.T) {
	err := fmt.Errorf("table:providers: %w", pgx.ErrNoRows)

	httpErr := asHTTPError(t, HandleError(err))
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
	if httpErr.Message != "Provider not found" {
		t.Errorf("message = %q, want %q", httpErr.Message, "Provider not found")
	}
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewUnauthorizedError("Invalid username or password", true)

	err := HandleError(original)
	if err != original {
		t.Fatalf("HTTPError was rewrapped: %v", err)
	}
}

func TestHandleErrorOpaqueFallback(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Status)
	}
}

func TestErrCode(t *testing.T) {
	unique := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	if got := ErrCode(unique); got != UniqueViolation {
		t.Errorf("ErrCode = %v, want UniqueViolation", got)
	}

	if got := ErrCode(errors.New("anything")); got != Other {
		t.Errorf("ErrCode = %v, want Other", got)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"person_username_key", "username"},
		{"unique_provider_email", "email"},
		{"provider_phone_number_ukey", "number"},
		{"", ""},
		{"pk_person", ""},
	}

	for _, tt := range tests {
		if got := extractColumnForUniqueViolation(tt.constraint); got != tt.want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}
