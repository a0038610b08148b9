package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{6,14}$`)
)

func (v *Validator) registerBuiltins() {
	v.Register("required", func(value any, _ []any, _ map[string]any) bool {
		return strings.TrimSpace(asString(value)) != ""
	}, "{field} is required")

	v.Register("email", func(value any, _ []any, _ map[string]any) bool {
		s := asString(value)
		return s == "" || emailRe.MatchString(s)
	}, "Please enter a valid email address")

	v.Register("minLength", func(value any, params []any, _ map[string]any) bool {
		n, ok := asInt(first(params))
		if !ok {
			return true
		}
		return len([]rune(asString(value))) >= n
	}, "{field} must be at least {min} characters")

	v.Register("maxLength", func(value any, params []any, _ map[string]any) bool {
		n, ok := asInt(first(params))
		if !ok {
			return true
		}
		return len([]rune(asString(value))) <= n
	}, "{field} must be at most {max} characters")

	v.Register("match", func(value any, params []any, form map[string]any) bool {
		other := asString(first(params))
		return asString(value) == asString(form[other])
	}, "{field} must match {other}")

	v.Register("pattern", func(value any, params []any, _ map[string]any) bool {
		re, err := regexp.Compile(asString(first(params)))
		if err != nil {
			return true
		}
		return re.MatchString(asString(value))
	}, "{field} has an invalid format")

	v.Register("number", func(value any, _ []any, _ map[string]any) bool {
		_, ok := asFloat(value)
		return ok
	}, "{field} must be a number")

	v.Register("min", func(value any, params []any, _ map[string]any) bool {
		n, okN := asFloat(first(params))
		val, okV := asFloat(value)
		if !okN || !okV {
			return true
		}
		return val >= n
	}, "{field} must be at least {min}")

	v.Register("max", func(value any, params []any, _ map[string]any) bool {
		n, okN := asFloat(first(params))
		val, okV := asFloat(value)
		if !okN || !okV {
			return true
		}
		return val <= n
	}, "{field} must be at most {max}")

	v.Register("url", func(value any, _ []any, _ map[string]any) bool {
		s := asString(value)
		if s == "" {
			return true
		}
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	}, "Please enter a valid URL")

	v.Register("phone", func(value any, _ []any, _ map[string]any) bool {
		s := asString(value)
		return s == "" || phoneRe.MatchString(s)
	}, "Please enter a valid phone number")
}

// --------------------------------------------------
// Conversions
// --------------------------------------------------

func first(params []any) any {
	if len(params) == 0 {
		return nil
	}
	return params[0]
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
