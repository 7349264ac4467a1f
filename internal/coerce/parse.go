package coerce

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"

	"csvjson/internal/diagnostic"
	"csvjson/internal/schema"
)

// Parse converts raw according to def. The error is always a
// *diagnostic.Diagnostic with warning severity.
func Parse(def schema.Definition, raw string) (any, error) {
	switch def.Type {
	case schema.TypeInteger:
		return ParseInt32(raw)
	case schema.TypeFloat:
		return ParseFloat64(raw)
	case schema.TypeBool:
		return ParseBool(raw, def.TrueToken, def.FalseToken)
	case schema.TypeDate:
		return ParseDate(raw, def.DateFormat)
	default:
		return raw, nil
	}
}

// ParseInt32 sanitizes s and parses it as a signed 32-bit integer.
func ParseInt32(s string) (int32, error) {
	clean := Sanitize(s)

	n, err := strconv.ParseInt(clean, 10, 32)
	if err != nil {
		return 0, sanitiseError(clean, "i32")
	}

	return int32(n), nil
}

// ParseFloat64 sanitizes s and parses it as a 64-bit float. Values that
// overflow to infinity are rejected since JSON cannot carry them.
func ParseFloat64(s string) (float64, error) {
	clean := Sanitize(s)

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, sanitiseError(clean, "f64")
	}

	return f, nil
}

// ParseBool matches s exactly against the true and false tokens.
func ParseBool(s, trueToken, falseToken string) (bool, error) {
	switch s {
	case trueToken:
		return true, nil
	case falseToken:
		return false, nil
	default:
		return false, diagnostic.Warning(diagnostic.KindParseBool,
			"whilst trying to parse bool",
			fmt.Sprintf("%q matches neither %q nor %q", s, trueToken, falseToken),
			fmt.Sprintf("use %q or %q in the csv, or set trueString/falseString", trueToken, falseToken))
	}
}

// ParseDate parses s with the strftime-style format and returns the Unix
// time in seconds of that calendar date at midnight UTC. Dates that do not
// exist in the calendar, such as 31/02/2020, are rejected.
func ParseDate(s, format string) (int64, error) {
	t, err := timefmt.Parse(s, format)
	if err == nil && !sameNumbers(s, timefmt.Format(t, format)) {
		err = fmt.Errorf("no such calendar date, would be read as %s", t.Format(time.DateOnly))
	}

	if err != nil {
		return 0, diagnostic.Warning(diagnostic.KindParseDate,
			"whilst trying to parse date",
			fmt.Sprintf("%s is not parsable with format %s: %v", s, format, err),
			fmt.Sprintf("format %s with given format: %s", s, format))
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix(), nil
}

// sameNumbers reports whether a and b hold the same sequence of digit runs,
// ignoring leading zeros. timefmt rolls an out-of-range day into the next
// month, which shows up as different numbers once the time is formatted back.
func sameNumbers(a, b string) bool {
	return slices.Equal(numbers(a), numbers(b))
}

func numbers(s string) []string {
	var out []string

	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}

		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}

		n := strings.TrimLeft(s[i:j], "0")
		if n == "" {
			n = "0"
		}

		out = append(out, n)
		i = j
	}

	return out
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func sanitiseError(input, intended string) *diagnostic.Diagnostic {
	return diagnostic.Warning(diagnostic.SanitiseKind(intended),
		fmt.Sprintf("whilst trying to sanitise %s str", intended),
		fmt.Sprintf("%s is not parsable as a %s", input, intended),
		fmt.Sprintf("modify %s so that it is parsable as a %s", input, intended))
}
