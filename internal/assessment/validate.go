package assessment

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate checks raw measurements in the fixed order area, pain, exudate and
// returns the first failure as a *ValidationError. Raw values may be any Go
// numeric type, bool (1 or 0), json.Number, or a decimal string; exudate must
// be textual.
func Validate(area, pain, exudate any) (ValidatedInput, error) {
	a, ok := toFloat(area)
	if !ok {
		return ValidatedInput{}, fail(FieldArea, ErrTypeConversion, "area must be numeric")
	}
	if !isFinite(a) {
		return ValidatedInput{}, fail(FieldArea, ErrNonFinite, "area must be a finite number")
	}
	if a < 0 {
		return ValidatedInput{}, fail(FieldArea, ErrNegativeValue, "area must not be negative")
	}

	p, ok := toFloat(pain)
	if !ok {
		return ValidatedInput{}, fail(FieldPain, ErrTypeConversion, "pain must be numeric")
	}
	if !isFinite(p) {
		return ValidatedInput{}, fail(FieldPain, ErrNonFinite, "pain must be a finite number")
	}
	if p < 0 || p > 10 {
		return ValidatedInput{}, fail(FieldPain, ErrOutOfRange, "pain is out of range (0-10)")
	}

	var text string
	switch e := exudate.(type) {
	case string:
		text = e
	case Exudate:
		text = string(e)
	default:
		return ValidatedInput{}, fail(FieldExudate, ErrTypeConversion, "exudate must be text (None/Light/Moderate/Heavy)")
	}
	if strings.TrimSpace(text) == "" {
		return ValidatedInput{}, fail(FieldExudate, ErrEmptyValue, "exudate must not be empty")
	}
	ex := Exudate(Canonicalize(text))
	if !ex.Valid() {
		return ValidatedInput{}, fail(FieldExudate, ErrInvalidEnum, "exudate is not one of None/Light/Moderate/Heavy")
	}

	return ValidatedInput{Area: a, Pain: p, Exudate: ex}, nil
}

// Canonicalize trims surrounding whitespace, title-cases the first character
// and lower-cases the rest. İ lower-cases to i followed by U+0307, so "LİGHT"
// does not become "Light". It is idempotent.
func Canonicalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	rest := strings.ReplaceAll(s[size:], "\u0130", "i\u0307")
	return string(unicode.ToTitle(r)) + strings.ToLower(rest)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// toFloat converts a raw value to float64. Strings overflowing float64 yield
// ±Inf so they are reported as non-finite rather than non-numeric.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		return parseFloat(string(n))
	case string:
		return parseFloat(n)
	}
	return 0, false
}

// parseFloat accepts decimal literals and inf, infinity or nan, each with an
// optional sign. Hex literals are not numbers here.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	unsigned := s
	if s != "" && (s[0] == '+' || s[0] == '-') {
		unsigned = s[1:]
	}
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}
