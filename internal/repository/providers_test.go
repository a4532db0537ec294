package repository

import "testing"

// Both Create and Edit forward the second address line through
// ProviderParams.addressLine2, so the empty-string-to-NULL coalescing is
// verified once here for both argument lists.
func TestProviderParamsAddressLine2Coalescing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"empty becomes NULL", "", nil},
		{"value passes through", "Suite 210", "Suite 210"},
		{"whitespace is a value", " ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProviderParams{AddressLine2: tt.in}
			if got := p.addressLine2(); got != tt.want {
				t.Errorf("addressLine2() = %v, want %v", got, tt.want)
			}
		})
	}
}
