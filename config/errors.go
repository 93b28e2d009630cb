package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedConfig is matched by every shape, range or ambiguity failure.
	ErrMalformedConfig = errors.New("malformed style configuration")
	// ErrNotFound is matched when no configuration document exists.
	ErrNotFound = errors.New("style configuration not found")
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error in field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Is makes a single ValidationError match ErrMalformedConfig.
func (e ValidationError) Is(target error) bool {
	return target == ErrMalformedConfig
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (errs ValidationErrors) Is(target error) bool {
	return target == ErrMalformedConfig && len(errs) > 0
}

func (errs ValidationErrors) HasErrors() bool {
	return len(errs) > 0
}

// Fields returns the offending field paths in report order.
func (errs ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		fields = append(fields, err.Field)
	}
	return fields
}

// NotFoundError reports the location(s) where a document was expected.
type NotFoundError struct {
	Path       string
	Candidates []string
}

func (e *NotFoundError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("configuration file not found in %s (looked for %s)", e.Path, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateSourceError is returned when more than one candidate document exists.
type DuplicateSourceError struct {
	Paths []string
}

func (e *DuplicateSourceError) Error() string {
	return fmt.Sprintf("%s: duplicate configuration source (%s); keep exactly one or pass an explicit path",
		ErrMalformedConfig, strings.Join(e.Paths, ", "))
}

func (e *DuplicateSourceError) Is(target error) bool {
	return target == ErrMalformedConfig
}
