package errors

import (
	"fmt"
	"time"
)

// Error types for the question-syllabus indexer
type ErrorType string

const (
	// Syllabus errors
	ErrorTypeMalformedSyllabus  ErrorType = "malformed_syllabus"
	ErrorTypeEmptySyllabusIndex ErrorType = "empty_syllabus_index"

	// Question errors
	ErrorTypeInvalidQuestion ErrorType = "invalid_question"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// MalformedSyllabusError reports syllabus entries that lacked the ancestry
// required to produce usable segments. Dropped entries are counted, not
// fatal, unless nothing usable remains.
type MalformedSyllabusError struct {
	Type       ErrorType
	Operation  string
	Subject    string
	Dropped    int
	Underlying error
	Timestamp  time.Time
}

// NewMalformedSyllabusError creates a malformed-syllabus error with context
func NewMalformedSyllabusError(op string, dropped int, err error) *MalformedSyllabusError {
	return &MalformedSyllabusError{
		Type:       ErrorTypeMalformedSyllabus,
		Operation:  op,
		Dropped:    dropped,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithSubject adds the offending subject identifier to the error
func (e *MalformedSyllabusError) WithSubject(subject string) *MalformedSyllabusError {
	e.Subject = subject
	return e
}

// Error implements the error interface
func (e *MalformedSyllabusError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s %s failed for subject %q (%d segments dropped): %v",
			e.Type, e.Operation, e.Subject, e.Dropped, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed (%d segments dropped): %v", e.Type, e.Operation, e.Dropped, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *MalformedSyllabusError) Unwrap() error {
	return e.Underlying
}

// EmptySyllabusIndexError is fatal: matching is meaningless with no segments
type EmptySyllabusIndexError struct {
	Type      ErrorType
	Operation string
	Timestamp time.Time
}

// NewEmptySyllabusIndexError creates an empty-index error
func NewEmptySyllabusIndexError(op string) *EmptySyllabusIndexError {
	return &EmptySyllabusIndexError{
		Type:      ErrorTypeEmptySyllabusIndex,
		Operation: op,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *EmptySyllabusIndexError) Error() string {
	return fmt.Sprintf("%s: %s has no syllabus segments to match against", e.Type, e.Operation)
}

// InvalidQuestionError reports a malformed question batch. An individual
// empty question is not an error; this fires only when the batch itself is
// unusable.
type InvalidQuestionError struct {
	Type       ErrorType
	Operation  string
	Position   int // 1-based position in the batch, 0 when batch-level
	Underlying error
	Timestamp  time.Time
}

// NewInvalidQuestionError creates an invalid-question error
func NewInvalidQuestionError(op string, position int, err error) *InvalidQuestionError {
	return &InvalidQuestionError{
		Type:       ErrorTypeInvalidQuestion,
		Operation:  op,
		Position:   position,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *InvalidQuestionError) Error() string {
	detail := "question batch is invalid"
	if e.Underlying != nil {
		detail = e.Underlying.Error()
	}
	if e.Position > 0 {
		return fmt.Sprintf("%s %s failed at question %d: %s", e.Type, e.Operation, e.Position, detail)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Type, e.Operation, detail)
}

// Unwrap returns the underlying error
func (e *InvalidQuestionError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration problem
type ConfigError struct {
	Type       ErrorType
	Field      string
	Value      interface{}
	Underlying error
}

// NewConfigError creates a configuration error
func NewConfigError(field string, value interface{}, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// IsMalformedSyllabus checks if an error is a malformed-syllabus error
func IsMalformedSyllabus(err error) bool {
	_, ok := err.(*MalformedSyllabusError)
	return ok
}

// IsEmptySyllabusIndex checks if an error is an empty-index error
func IsEmptySyllabusIndex(err error) bool {
	_, ok := err.(*EmptySyllabusIndexError)
	return ok
}

// IsInvalidQuestion checks if an error is an invalid-question error
func IsInvalidQuestion(err error) bool {
	_, ok := err.(*InvalidQuestionError)
	return ok
}
