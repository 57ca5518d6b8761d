package smarttable

// normalize.go coerces heterogeneous cell values into comparable forms.
//
// Numbers arrive from many places: raw float64 from the database, pgtype
// values behind driver.Valuer, pointers that may be nil, and display strings
// that already carry thousands separators or a currency sign. All of them
// resolve to a float64; anything that cannot be read becomes negative
// infinity so it sinks to the bottom of an ascending sort.

import (
	"database/sql/driver"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Bottom is the value assigned to missing or unparsable numeric input.
var Bottom = math.Inf(-1)

// ParseNumericValue converts v into a float64 suitable for ordering.
//
// Supported inputs are Go numeric kinds, strings (including formatted ones
// such as "1,580" or "1.234,56 ₪"), pointers to either, and driver.Valuer
// implementations such as pgtype.Numeric. nil, NaN, and unparsable input
// return [Bottom]. The function never panics and never returns an error.
func ParseNumericValue(v any) float64 {
	switch x := v.(type) {
	case nil:
		return Bottom
	case float64:
		return finiteOrBottom(x)
	case float32:
		return finiteOrBottom(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case string:
		return parseNumericString(x)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Bottom
	}

	if valuer, ok := v.(driver.Valuer); ok {
		val, err := valuer.Value()
		if err != nil {
			return Bottom
		}
		if _, again := val.(driver.Valuer); again {
			return Bottom
		}
		return ParseNumericValue(val)
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return ParseNumericValue(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return finiteOrBottom(rv.Float())
	case reflect.String:
		return parseNumericString(rv.String())
	case reflect.Slice:
		if b, ok := v.([]byte); ok {
			return parseNumericString(string(b))
		}
	}

	return Bottom
}

func finiteOrBottom(f float64) float64 {
	if math.IsNaN(f) {
		return Bottom
	}
	return f
}

// parseNumericString strips grouping separators and anything that is not a
// digit, decimal point or minus sign, then reads the longest numeric prefix.
//
// A comma is a thousands separator unless it is the last separator and a dot
// appears before it ("1.234,56"), in which case the roles swap.
func parseNumericString(s string) float64 {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return Bottom
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')
	if lastComma > lastDot && lastDot >= 0 {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}

	f, ok := parseLeadingFloat(b.String())
	if !ok {
		return Bottom
	}
	return f
}

// parseLeadingFloat reads an optional minus sign, digits, and an optional
// fraction from the start of s and ignores the rest.
func parseLeadingFloat(s string) (float64, bool) {
	end := 0
	if end < len(s) && s[end] == '-' {
		end++
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return finiteOrBottom(f), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Collation compares text with a locale-aware total order that ignores case,
// diacritics, punctuation, and whitespace, and compares digit runs by
// numeric value ("פריט 2" < "פריט 10").
//
// A Collation is safe for concurrent use.
type Collation struct {
	tag  language.Tag
	pool sync.Pool
}

// NewCollation creates a Collation for the given locale.
func NewCollation(tag language.Tag) *Collation {
	c := &Collation{tag: tag}
	c.pool.New = func() any {
		return collate.New(tag, collate.Loose, collate.Numeric)
	}
	return c
}

// ParseCollation creates a Collation from a BCP 47 locale such as "he" or "he-IL".
func ParseCollation(locale string) (*Collation, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return NewCollation(tag), nil
}

// Tag returns the collation locale.
func (c *Collation) Tag() language.Tag {
	return c.tag
}

// Compare returns a negative number when a sorts before b, zero when they are
// equivalent, and a positive number otherwise.
func (c *Collation) Compare(a, b string) int {
	col := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(col)
	return col.CompareString(stripIgnorable(a), stripIgnorable(b))
}

func stripIgnorable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// DefaultCollation orders Hebrew text and is used by [CompareText].
var DefaultCollation = NewCollation(language.Hebrew)

// CompareText compares a and b with [DefaultCollation].
func CompareText(a, b string) int {
	return DefaultCollation.Compare(a, b)
}

// TimeRemaining returns the time left until end, measured from now.
// Zero or negative values mean the listing has already concluded.
func TimeRemaining(end, now time.Time) time.Duration {
	return end.Sub(now)
}

// ParseTimeRemaining returns the milliseconds left until end, measured from now.
func ParseTimeRemaining(end, now time.Time) int64 {
	return TimeRemaining(end, now).Milliseconds()
}
