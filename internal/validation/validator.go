// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Package validation provides struct validation using
// go-playground/validator v10 through a thread-safe singleton with
// human-readable error messages.
//
//	type rankRequest struct {
//	    Limit int `validate:"gte=0,lte=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // verr.Message() is safe to return to API clients
//	}
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// instance returns the shared validator, creating it on first use.
// validator.Validate caches struct metadata, so a single instance is
// both safe and fast for concurrent use.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	// Field is the struct field that failed.
	Field string

	// Tag is the validation tag that failed (e.g. "lte").
	Tag string

	// Param is the tag parameter (e.g. "100" for lte=100).
	Param string
}

// Error returns a human-readable message for the failed rule.
func (f FieldError) Error() string {
	switch f.Tag {
	case "required":
		return fmt.Sprintf("%s is required", f.Field)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", f.Field, f.Param)
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", f.Field, f.Param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f.Field, f.Param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", f.Field, f.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f.Field, f.Param)
	default:
		return fmt.Sprintf("%s failed validation rule %q", f.Field, f.Tag)
	}
}

// ValidationErrors aggregates every failed rule of one struct.
type ValidationErrors struct {
	Fields []FieldError
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	return v.Message()
}

// Message joins the per-field messages into one client-safe string.
func (v *ValidationErrors) Message() string {
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateStruct validates a struct against its validate tags. Returns
// nil when validation passes.
func ValidateStruct(s interface{}) *ValidationErrors {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the caller passed a non-struct.
		return &ValidationErrors{Fields: []FieldError{{Field: "input", Tag: "struct"}}}
	}

	out := &ValidationErrors{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
