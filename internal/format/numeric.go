package format

import (
	"math"
	"strconv"
	"strings"
)

// Numeric conversion for INI values.
//
// Values are stored as text and read back the way C's atol/atof read them:
// leading whitespace is skipped, the longest numeric prefix is converted and
// everything after it is ignored. A value with no numeric prefix reads as 0.
// Out-of-range integers clamp to the int64 limits.

// ParseLeadingInt converts the numeric prefix of s to an integer.
func ParseLeadingInt(s string) int64 {
	s = trimCSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return 0
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Only ErrRange is possible here; the prefix is all digits.
		if s[0] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return v
}

// ParseLeadingFloat converts the numeric prefix of s to a float64.
func ParseLeadingFloat(s string) float64 {
	s = trimCSpace(s)

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// inf, infinity and nan in any case
	rest := strings.ToLower(s[i:])
	switch {
	case strings.HasPrefix(rest, "infinity"), strings.HasPrefix(rest, "inf"):
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case strings.HasPrefix(rest, "nan"):
		return math.NaN()
	}

	start := i
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	// ParseFloat returns ±Inf or 0 alongside ErrRange, which is what atof does.
	v, _ := strconv.ParseFloat(s[start:i], 64)
	if neg {
		return -v
	}
	return v
}

// FormatInt renders an integer value.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders v with the fewest digits that read back exactly at
// the given bit size (32 for script floats, 64 otherwise).
func FormatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

// Widen converts a script float to float64 without picking up binary noise,
// so 1.1 stays 1.1 rather than becoming 1.100000023841858.
func Widen(v float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		return float64(v)
	}
	return f
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// trimCSpace drops the leading characters C's isspace accepts.
func trimCSpace(s string) string {
	return strings.TrimLeft(s, " \t\n\v\f\r")
}
