package validators

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FieldError names the form field that failed validation. It is raised
// before any write reaches the database.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}

func errRequired(field string) error {
	return &FieldError{Field: field, Reason: "missing required field"}
}

func errInvalid(field string) error {
	return &FieldError{Field: field, Reason: "invalid field"}
}

var (
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// MustString returns the trimmed value or fails when it is empty.
func MustString(v, field string) (string, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return "", errRequired(field)
	}
	return s, nil
}

// OptionalString trims the value; empty input becomes the empty string.
func OptionalString(v string) string {
	return strings.TrimSpace(v)
}

// MustTime accepts exactly "HH:MM". The check is shape-only: "25:99"
// passes here and is left to the database column type.
func MustTime(v, field string) (string, error) {
	s, err := MustString(v, field)
	if err != nil {
		return "", err
	}
	if !timeRe.MatchString(s) {
		return "", &FieldError{Field: field, Reason: "invalid time format"}
	}
	return s, nil
}

// MustDate accepts exactly "YYYY-MM-DD". Shape-only as well: a value
// like "2024-02-31" passes format validation.
func MustDate(v, field string) (string, error) {
	s, err := MustString(v, field)
	if err != nil {
		return "", err
	}
	if !dateRe.MatchString(s) {
		return "", &FieldError{Field: field, Reason: "invalid date format"}
	}
	return s, nil
}

// MustInt parses a base-10 integer.
func MustInt(v, field string) (int, error) {
	s, err := MustString(v, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalid(field)
	}
	return n, nil
}

// MustPositiveInt parses a strictly positive integer.
func MustPositiveInt(v, field string) (int, error) {
	n, err := MustInt(v, field)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errInvalid(field)
	}
	return n, nil
}

var priceKeepRe = regexp.MustCompile(`[^\d.,]`)

// MustPriceCents parses a human-typed price into integer cents.
//
// Accepted shapes:
//
//	"35"       -> 3500
//	"35,00"    -> 3500
//	"35.00"    -> 3500
//	"1.234,56" -> 123456
//	"1,234.56" -> 123456
//
// Heuristic: with both separators present the rightmost one is the
// decimal separator and the other is stripped as a thousands mark.
// With only a comma the comma is decimal; with only a dot the dot is.
// Inputs with a single separator and a 3-digit group ("1.234") are
// ambiguous under this rule; the heuristic wins.
func MustPriceCents(v, field string) (int, error) {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return 0, errRequired(field)
	}

	cleaned := priceKeepRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, errInvalid(field)
	}

	comma := strings.LastIndex(cleaned, ",")
	dot := strings.LastIndex(cleaned, ".")

	var normalized string
	switch {
	case comma >= 0 && dot >= 0 && dot > comma:
		normalized = strings.ReplaceAll(cleaned, ",", "")
	case comma >= 0:
		normalized = strings.ReplaceAll(cleaned, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	default:
		normalized = cleaned
	}

	num, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) || num < 0 {
		return 0, errInvalid(field)
	}

	return int(math.Round(num * 100)), nil
}
