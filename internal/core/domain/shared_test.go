package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	if _, err := uuid.Parse(string(a)); err != nil {
		t.Fatalf("expected a UUID, got %q: %v", a, err)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}

func TestNewAmountFromCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"whole units", 2900, "29.00"},
		{"with cents", 2999, "29.99"},
		{"less than one unit", 50, "0.50"},
		{"zero", 0, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAmountFromCents(tt.cents).StringFixed(PriceScale); got != tt.want {
				t.Errorf("NewAmountFromCents(%d) = %s, want %s", tt.cents, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("1.50")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !a.Equal(NewAmountFromCents(150)) {
		t.Fatalf("expected 1.50, got %s", a)
	}

	if _, err := ParseAmount("abc"); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
}
