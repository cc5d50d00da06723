package common

import (
	"errors"
	"testing"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"non-empty string", "Employment", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required("field", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Required(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestUUIDRule(t *testing.T) {
	if err := UUID("id", "0e9bd3f0-9e75-4df6-8bcb-1b4f9bbd0a10"); err != nil {
		t.Errorf("valid uuid rejected: %v", err)
	}
	if err := UUID("id", "not-a-uuid"); err == nil {
		t.Error("invalid uuid accepted")
	}
	if err := UUID("id", 42); err == nil {
		t.Error("non-string accepted")
	}
}

func TestMaxLengthCountsRunes(t *testing.T) {
	if err := MaxLength("f", "契約契約", 4); err != nil {
		t.Errorf("four runes rejected at max 4: %v", err)
	}
	if err := MaxLength("f", "契約契約契", 4); err == nil {
		t.Error("five runes accepted at max 4")
	}
}

func TestValidateAndReturnError(t *testing.T) {
	v := NewValidator().Field("contractType", "", Required)
	err := ValidateAndReturnError(v)
	if err == nil {
		t.Fatal("expected error for failed validation")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}

	if err := ValidateAndReturnError(NewValidator().Field("id", "ok", Required)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
