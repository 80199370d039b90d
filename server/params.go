package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/umputun/uselessfacts/pkg/domain"
)

// splitList parses a comma separated query value, dropping blanks
func splitList(s string) []string {
	res := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

// intParam reads an integer query param, def when absent, error when outside [lo, hi]
func intParam(q url.Values, name string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	if v < lo || v > hi {
		return 0, errOutOfRange(name, v, lo, hi)
	}
	return v, nil
}

// boolParam accepts only true and false, def when absent
func boolParam(q url.Values, name string, def bool) (bool, error) {
	switch raw := strings.TrimSpace(q.Get(name)); raw {
	case "":
		return def, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be true or false, got %q", name, raw)
	}
}

// timeFilterParam parses timeFilter, def when absent
func timeFilterParam(q url.Values, def domain.TimeFilter) (domain.TimeFilter, error) {
	raw := q.Get("timeFilter")
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return domain.ParseTimeFilter(raw)
}

func errUnsupported(name, value string, allowed ...string) error {
	return fmt.Errorf("unsupported %s %q, expected one of %s", name, value, strings.Join(allowed, ", "))
}

func errTooShort(name string, minLen int) error {
	return fmt.Errorf("%s must be at least %d characters", name, minLen)
}

func errOutOfRange(name string, v, lo, hi int) error {
	return fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, v)
}
