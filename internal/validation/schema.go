// Package validation checks the public lead forms before they reach storage.
//
// A Schema is a list of FieldRule values interpreted in order. Every rule is
// evaluated and every failing field reports exactly one message, so callers
// can show all problems at once.
package validation

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Format names a string format checked by go-playground/validator.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
	FormatURL   Format = "url"
)

// FieldRule describes the constraints on one form field. Lengths count runes
// of the trimmed value. Optional fields are only checked when non-empty.
type FieldRule struct {
	Field    string
	Required bool
	Min      int
	Max      int
	Format   Format
	OneOf    []string

	RequiredMsg string
	MinMsg      string
	MaxMsg      string
	FormatMsg   string
	OneOfMsg    string
}

// Schema is an ordered set of field rules.
type Schema []FieldRule

// Errors maps a field name to its first failing message.
type Errors map[string]string

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formatValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Normalize returns values with every field named by the schema trimmed.
// Fields absent from values come back as empty strings.
func (s Schema) Normalize(values map[string]string) map[string]string {
	out := make(map[string]string, len(s))
	for _, r := range s {
		out[r.Field] = strings.TrimSpace(values[r.Field])
	}
	return out
}

// Validate checks values against the schema. A nil result means valid.
func (s Schema) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, r := range s {
		if msg, ok := r.check(strings.TrimSpace(values[r.Field])); !ok {
			errs[r.Field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IsHTTPURL reports whether v is an absolute http or https URL.
func IsHTTPURL(v string) bool {
	return formatValidator().Var(v, "http_url") == nil
}

func (r FieldRule) check(v string) (string, bool) {
	if v == "" {
		if r.Required {
			return firstNonEmpty(r.RequiredMsg, r.MinMsg, "Required"), false
		}
		return "", true
	}

	n := utf8.RuneCountInString(v)
	if r.Min > 0 && n < r.Min {
		return firstNonEmpty(r.MinMsg, r.RequiredMsg, "Too short"), false
	}
	if r.Max > 0 && n > r.Max {
		return firstNonEmpty(r.MaxMsg, "Too long"), false
	}

	if r.Format != FormatNone {
		if err := formatValidator().Var(v, string(r.Format)); err != nil {
			return firstNonEmpty(r.FormatMsg, "Invalid format"), false
		}
	}

	if len(r.OneOf) > 0 && !contains(r.OneOf, v) {
		return firstNonEmpty(r.OneOfMsg, r.RequiredMsg, "Invalid option"), false
	}
	return "", true
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func firstNonEmpty(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return ""
}
