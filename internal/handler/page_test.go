package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/opendirectory/providerdir/internal/errs"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		in         string
		wantStart  int
		wantAmount int
	}{
		{"0-25", 0, 25},
		{"50-10", 50, 10},
		{"0-0", 0, 0},
	}

	for _, tt := range tests {
		start, amount, err := parsePageRange(tt.in)
		if err != nil {
			t.Errorf("parsePageRange(%q) failed: %v", tt.in, err)
			continue
		}
		if start != tt.wantStart || amount != tt.wantAmount {
			t.Errorf("parsePageRange(%q) = (%d, %d), want (%d, %d)",
				tt.in, start, amount, tt.wantStart, tt.wantAmount)
		}
	}
}

func TestParsePageRangeRejectsBadInput(t *testing.T) {
	bad := []string{"", "25", "a-b", "0-", "-10", "-5-10", "1.5-10"}

	for _, in := range bad {
		_, _, err := parsePageRange(in)
		if err == nil {
			t.Errorf("parsePageRange(%q) accepted bad input", in)
			continue
		}

		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) {
			t.Errorf("parsePageRange(%q) err = %T, want *errs.HTTPError", in, err)
			continue
		}
		if httpErr.Status != http.StatusBadRequest {
			t.Errorf("parsePageRange(%q) status = %d, want 400", in, httpErr.Status)
		}
	}
}
