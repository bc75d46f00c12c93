package usecase

import (
	"fmt"
	"testing"
)

func TestNormalizeExpiry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"slash MM/YY", "09/23", "09/2023"},
		{"slash MM/YYYY", "09/2026", "09/2026"},
		{"single digit month", "5/26", "05/2026"},
		{"no separator", "0923", "09/2023"},
		{"embedded in text", "Best before 07/25 from mfg", "07/2025"},
		{"free text without digits", "unknown", "unknown"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExpiry(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeExpiry(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("idempotent on normalized output", func(t *testing.T) {
		inputs := []string{"09/23", "5/26", "12/2030", "no date here"}
		for _, input := range inputs {
			once := NormalizeExpiry(input)
			twice := NormalizeExpiry(once)
			if once != twice {
				t.Errorf("NormalizeExpiry not idempotent for %q: %q != %q", input, once, twice)
			}
		}
	})

	t.Run("two-digit years always map to 20xx", func(t *testing.T) {
		for y := 0; y <= 99; y++ {
			input := fmt.Sprintf("06/%02d", y)
			want := fmt.Sprintf("06/20%02d", y)
			if got := NormalizeExpiry(input); got != want {
				t.Errorf("NormalizeExpiry(%q) = %q, want %q", input, got, want)
			}
		}
	})
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAmount float64
		wantValid  bool
	}{
		{"rupee symbol", "₹150", 150.0, true},
		{"decimal with symbol", "₹70.00", 70.0, true},
		{"surrounding whitespace", " 70.00 ", 70.0, true},
		{"plain number", "270.00", 270.0, true},
		{"thousands separator", "₹1,299", 1299.0, true},
		{"not a number", "not a number", 0.0, false},
		{"empty string", "", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePrice(tt.input)
			if got.Amount != tt.wantAmount {
				t.Errorf("NormalizePrice(%q).Amount = %v, want %v", tt.input, got.Amount, tt.wantAmount)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("NormalizePrice(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
		})
	}

	t.Run("unparsable input keeps the zero fallback", func(t *testing.T) {
		price := NormalizePrice("garbage")
		if price.Amount != 0.0 {
			t.Errorf("Amount = %v, want 0.0", price.Amount)
		}
	})
}
