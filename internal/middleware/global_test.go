package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opendirectory/providerdir/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	global := NewGlobalMiddlewares(nil)
	global.GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an error body: %v (%s)", err, rec.Body.String())
	}

	return rec, body
}

func TestGlobalErrorHandlerHTTPError(t *testing.T) {
	rec, body := renderError(t, errs.NewUnauthorizedError("Invalid username or password", true))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if body.Code != "UNAUTHORIZED" {
		t.Errorf("code = %q", body.Code)
	}
	if body.Message != "Invalid username or password" {
		t.Errorf("message = %q", body.Message)
	}
	if !body.Override {
		t.Error("override flag lost in rendering")
	}
}

func TestGlobalErrorHandlerRouteNotFound(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if body.Message != "Route not found" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestGlobalErrorHandlerNoRows(t *testing.T) {
	rec, body := renderError(t, pgx.ErrNoRows)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if body.Code != "NOT_FOUND" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestGlobalErrorHandlerOpaqueFallback(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: out of shared memory"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if body.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("internal detail leaked: %q", body.Message)
	}
}
