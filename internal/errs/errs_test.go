package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bad Request", "BAD_REQUEST"},
		{"Not Found", "NOT_FOUND"},
		{"Internal Server Error", "INTERNAL_SERVER_ERROR"},
		{"ok", "OK"},
	}

	for _, tt := range tests {
		if got := MakeUpperCaseWithUnderscores(tt.in); got != tt.want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("no", true), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("no", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("no", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestCustomCodeOverride(t *testing.T) {
	code := "PROVIDER_ALREADY_EXISTS"
	err := NewBadRequestError("dup", true, &code, nil, nil)
	if err.Code != code {
		t.Errorf("code = %q, want %q", err.Code, code)
	}
}

func TestInternalServerErrorIsOpaque(t *testing.T) {
	err := NewInternalServerError()
	if err.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("message = %q, want the bare status text", err.Message)
	}
	if err.Override {
		t.Error("internal errors must not be flagged displayable")
	}
}

func TestWithMessage(t *testing.T) {
	base := NewNotFoundError("Resource not found", true, nil)
	renamed := base.WithMessage("Provider not found")

	if renamed.Message != "Provider not found" {
		t.Errorf("message = %q", renamed.Message)
	}
	if renamed.Status != base.Status || renamed.Code != base.Code {
		t.Error("WithMessage must only change the message")
	}
	if base.Message != "Resource not found" {
		t.Error("WithMessage must not mutate the receiver")
	}
}

func TestIsMatchesOnType(t *testing.T) {
	err := error(NewBadRequestError("x", false, nil, nil, nil))

	if !errors.Is(err, &HTTPError{}) {
		t.Error("expected errors.Is to match any *HTTPError")
	}
	if errors.Is(errors.New("plain"), &HTTPError{}) {
		t.Error("plain errors must not match *HTTPError")
	}
}
