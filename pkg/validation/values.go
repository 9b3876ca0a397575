package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// IsEmpty reports whether value counts as "not provided": nil, an empty
// string or an empty slice. Whitespace and false are values.
func IsEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case []any:
		return len(typed) == 0
	case []string:
		return len(typed) == 0
	default:
		return false
	}
}

// Length returns the length of strings (in runes) and slices. Other values
// have no length.
func Length(value any) (int, bool) {
	switch typed := value.(type) {
	case string:
		return utf8.RuneCountInString(typed), true
	case []any:
		return len(typed), true
	case []string:
		return len(typed), true
	default:
		return 0, false
	}
}

// Number converts value into a float the way a browser's parseFloat would:
// leading whitespace is skipped and the longest numeric prefix wins, so
// "12kg" is 12 and "abc" is not a number.
func Number(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		if math.IsNaN(typed) {
			return 0, false
		}
		return typed, true
	case string:
		match := leadingFloat.FindString(strings.TrimLeft(typed, " \t\r\n"))
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Integer converts value into an int the way parseInt would: the leading
// run of digits counts, anything else is not a number. Floats truncate.
func Integer(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case int32:
		return int(typed), true
	case float32:
		return int(typed), true
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0, false
		}
		return int(typed), true
	case string:
		match := leadingInt.FindString(strings.TrimLeft(typed, " \t\r\n"))
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.Atoi(match)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// IntegerOrZero is Integer with non-numeric input treated as zero.
func IntegerOrZero(value any) int {
	n, _ := Integer(value)
	return n
}

func stringify(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case nil:
		return ""
	default:
		return fmt.Sprint(typed)
	}
}
