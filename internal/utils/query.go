package utils

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"quake-bknd/internal/models"
)

// ParamError describes a query or path parameter that failed validation.
// Handlers turn it into a 400 response.
type ParamError struct {
	Name   string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Name, e.Reason)
}

func paramErr(name, format string, args ...any) error {
	return &ParamError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

// ParsePathInt parses a required integer path value.
func ParsePathInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, paramErr(name, "must be an integer")
	}
	return v, nil
}

// QueryInt reads an optional integer bounded to [lo, hi]. Missing values yield def.
func QueryInt(q url.Values, name string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, paramErr(name, "must be an integer")
	}
	if v < lo || v > hi {
		return 0, paramErr(name, "must be between %d and %d", lo, hi)
	}
	return v, nil
}

// QueryInt64Min reads an optional int64 that must be at least lo.
func QueryInt64Min(q url.Values, name string, def, lo int64) (int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, paramErr(name, "must be an integer")
	}
	if v < lo {
		return 0, paramErr(name, "must be at least %d", lo)
	}
	return v, nil
}

// QueryFloat reads an optional finite float. Missing values yield def.
func QueryFloat(q url.Values, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, paramErr(name, "must be a finite number")
	}
	return v, nil
}

// QueryFloatMin is QueryFloat with a lower bound.
func QueryFloatMin(q url.Values, name string, def, lo float64) (float64, error) {
	v, err := QueryFloat(q, name, def)
	if err != nil {
		return 0, err
	}
	if v < lo {
		return 0, paramErr(name, "must be at least %g", lo)
	}
	return v, nil
}

// RequireFloat reads a mandatory float.
func RequireFloat(q url.Values, name string) (float64, error) {
	if strings.TrimSpace(q.Get(name)) == "" {
		return 0, paramErr(name, "is required")
	}
	return QueryFloat(q, name, 0)
}

// RequireDate reads a mandatory YYYY-MM-DD date and returns it normalized.
func RequireDate(q url.Values, name string) (string, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return "", paramErr(name, "is required")
	}

	d, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return "", paramErr(name, "must be a date formatted YYYY-MM-DD")
	}
	return d.Format(models.DateLayout), nil
}
