package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func runRequestID(t *testing.T, incoming string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	return c, rec
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	c, rec := runRequestID(t, "abc-123")

	if got := GetRequestID(c); got != "abc-123" {
		t.Errorf("context request id = %q, want abc-123", got)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("response header = %q, want abc-123", got)
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	c, rec := runRequestID(t, "")

	id := GetRequestID(c)
	if id == "" {
		t.Fatal("no request id generated")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", id, err)
	}
	if rec.Header().Get(RequestIDHeader) != id {
		t.Error("response header does not echo the generated id")
	}
}

func TestGetRequestIDUnset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if got := GetRequestID(c); got != "" {
		t.Errorf("request id = %q, want empty", got)
	}
}
