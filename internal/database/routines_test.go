package database

import "testing"

func TestBuildRoutineQuery(t *testing.T) {
	tests := []struct {
		routine string
		argc    int
		want    string
	}{
		{"sp_view_providers", 0, "SELECT * FROM sp_view_providers()"},
		{"sp_get_user_by_name", 1, "SELECT * FROM sp_get_user_by_name($1)"},
		{"sp_view_items", 3, "SELECT * FROM sp_view_items($1, $2, $3)"},
	}

	for _, tt := range tests {
		if got := buildRoutineQuery(tt.routine, tt.argc); got != tt.want {
			t.Errorf("buildRoutineQuery(%q, %d) = %q, want %q", tt.routine, tt.argc, got, tt.want)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	if got := normalizeValue([]byte("anchorage")); got != "anchorage" {
		t.Errorf("byte slice not converted: %v", got)
	}
	if got := normalizeValue(42); got != 42 {
		t.Errorf("int changed: %v", got)
	}
	if got := normalizeValue(nil); got != nil {
		t.Errorf("nil changed: %v", got)
	}
}
