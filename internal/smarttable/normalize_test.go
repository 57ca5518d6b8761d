package smarttable

import (
	"math"
	"math/big"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/language"
)

// ============================================================================
// ParseNumericValue Tests
// ============================================================================

func TestParseNumericValue(t *testing.T) {
	price := 1580.0
	var nilPrice *float64

	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil", input: nil, want: math.Inf(-1)},
		{name: "float", input: 800.5, want: 800.5},
		{name: "int", input: 300, want: 300},
		{name: "int64", input: int64(42), want: 42},
		{name: "uint8", input: uint8(7), want: 7},
		{name: "NaN", input: math.NaN(), want: math.Inf(-1)},
		{name: "thousands comma", input: "1,580", want: 1580},
		{name: "thousands and decimals", input: "1,234.56", want: 1234.56},
		{name: "european format", input: "1.234,56", want: 1234.56},
		{name: "currency suffix", input: "1,580 ₪", want: 1580},
		{name: "surrounding whitespace", input: "  42 ", want: 42},
		{name: "negative", input: "-12.5", want: -12.5},
		{name: "invalid", input: "invalid", want: math.Inf(-1)},
		{name: "empty string", input: "", want: math.Inf(-1)},
		{name: "only separators", input: ",.", want: math.Inf(-1)},
		{name: "pointer", input: &price, want: 1580},
		{name: "nil pointer", input: nilPrice, want: math.Inf(-1)},
		{name: "bytes", input: []byte("99"), want: 99},
		{name: "unsupported type", input: struct{}{}, want: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumericValue(tt.input)
			if got != tt.want {
				t.Errorf("ParseNumericValue(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumericValue_Numeric(t *testing.T) {
	valid := pgtype.Numeric{Int: big.NewInt(158050), Exp: -2, Valid: true}
	if got := ParseNumericValue(valid); got != 1580.5 {
		t.Errorf("expected 1580.5 from pgtype.Numeric, got %v", got)
	}

	invalid := pgtype.Numeric{}
	if got := ParseNumericValue(invalid); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf for NULL numeric, got %v", got)
	}
}

func TestParseNumericValue_FormattedMatchesRaw(t *testing.T) {
	pairs := []struct {
		formatted string
		raw       float64
	}{
		{"1,580", 1580},
		{"12,000,000", 12000000},
		{"3,750.25", 3750.25},
	}

	for _, p := range pairs {
		if got := ParseNumericValue(p.formatted); got != ParseNumericValue(p.raw) {
			t.Errorf("%q parsed to %v, raw %v parsed to %v", p.formatted, got, p.raw, ParseNumericValue(p.raw))
		}
	}
}

// ============================================================================
// CompareText Tests
// ============================================================================

func TestCompareText(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "alef before bet", a: "אלף", b: "בית", want: -1},
		{name: "gimel after alef", a: "גמל", b: "אלף", want: 1},
		{name: "numeric substrings", a: "פריט 2", b: "פריט 10", want: -1},
		{name: "case insensitive", a: "Vintage Lamp", b: "vintage lamp", want: 0},
		{name: "punctuation ignored", a: "שעון-יד", b: "שעון יד", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sign(CompareText(tt.a, tt.b))
			if got != tt.want {
				t.Errorf("CompareText(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareText_Reflexive(t *testing.T) {
	for _, s := range textSamples {
		if got := CompareText(s, s); got != 0 {
			t.Errorf("CompareText(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestCompareText_Antisymmetric(t *testing.T) {
	for _, a := range textSamples {
		for _, b := range textSamples {
			if sign(CompareText(a, b)) != -sign(CompareText(b, a)) {
				t.Errorf("CompareText not antisymmetric for %q, %q", a, b)
			}
		}
	}
}

func TestCompareText_Transitive(t *testing.T) {
	sorted := append([]string(nil), textSamples...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareText(sorted[i], sorted[j]) < 0
	})

	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if CompareText(sorted[i], sorted[j]) > 0 {
				t.Errorf("sorted order broken: %q after %q", sorted[i], sorted[j])
			}
		}
	}
}

func TestParseCollation(t *testing.T) {
	c, err := ParseCollation("he-IL")
	if err != nil {
		t.Fatalf("ParseCollation failed: %v", err)
	}
	base, _ := c.Tag().Base()
	want, _ := language.Hebrew.Base()
	if base != want {
		t.Errorf("expected Hebrew base, got %v", base)
	}

	if _, err := ParseCollation("not a locale!"); err == nil {
		t.Error("expected error for malformed locale")
	}
}

func TestCollation_Concurrent(t *testing.T) {
	c := NewCollation(language.Hebrew)
	done := make(chan bool)

	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if c.Compare("אלף", "בית") >= 0 {
					done <- false
					return
				}
			}
			done <- true
		}()
	}

	for i := 0; i < 8; i++ {
		if !<-done {
			t.Error("concurrent comparison returned wrong order")
		}
	}
}

// ============================================================================
// Time Remaining Tests
// ============================================================================

func TestParseTimeRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := ParseTimeRemaining(now.Add(2*time.Hour), now); got != 7200000 {
		t.Errorf("expected 7200000ms, got %d", got)
	}
	if got := ParseTimeRemaining(now.Add(-time.Hour), now); got > 0 {
		t.Errorf("expected non-positive for concluded listing, got %d", got)
	}
	if got := ParseTimeRemaining(now, now); got != 0 {
		t.Errorf("expected 0 at end instant, got %d", got)
	}
}

var textSamples = []string{
	"אלף", "בית", "גמל", "פריט 2", "פריט 10", "Lamp", "lamp", "שעון-יד", "", "123", "Zebra",
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
