package log

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryState, "STATE"},
		{CategoryAccess, "ACCESS"},
		{CategoryCode, "CODE"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestAccessReasonString(t *testing.T) {
	tests := []struct {
		reason AccessReason
		want   string
	}{
		{ReasonNoCode, "NO_CODE"},
		{ReasonMaster, "MASTER"},
		{ReasonMatch, "MATCH"},
		{ReasonLengthMismatch, "LENGTH_MISMATCH"},
		{ReasonMismatch, "MISMATCH"},
		{AccessReason(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.reason.String()
		if got != tt.want {
			t.Errorf("AccessReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
