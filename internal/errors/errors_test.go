package errors

import (
	"errors"
	"testing"
)

func TestMalformedSyllabusError(t *testing.T) {
	underlying := errors.New("missing subject code and name")
	err := NewMalformedSyllabusError("build_index", 3, underlying).
		WithSubject("Unknown Subject")

	if err.Type != ErrorTypeMalformedSyllabus {
		t.Errorf("Expected Type to be ErrorTypeMalformedSyllabus, got %v", err.Type)
	}

	if err.Dropped != 3 {
		t.Errorf("Expected Dropped to be 3, got %d", err.Dropped)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := `malformed_syllabus build_index failed for subject "Unknown Subject" (3 segments dropped): missing subject code and name`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsMalformedSyllabus(err) {
		t.Errorf("Expected IsMalformedSyllabus to report true")
	}
}

func TestEmptySyllabusIndexError(t *testing.T) {
	err := NewEmptySyllabusIndexError("assemble")

	if err.Type != ErrorTypeEmptySyllabusIndex {
		t.Errorf("Expected Type to be ErrorTypeEmptySyllabusIndex, got %v", err.Type)
	}

	expectedMsg := "empty_syllabus_index: assemble has no syllabus segments to match against"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsEmptySyllabusIndex(err) {
		t.Errorf("Expected IsEmptySyllabusIndex to report true")
	}

	if IsMalformedSyllabus(err) {
		t.Errorf("Empty index error should not classify as malformed syllabus")
	}
}

func TestInvalidQuestionError(t *testing.T) {
	underlying := errors.New("non-text entry")
	err := NewInvalidQuestionError("validate", 5, underlying)

	if err.Position != 5 {
		t.Errorf("Expected Position to be 5, got %d", err.Position)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := "invalid_question validate failed at question 5: non-text entry"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	batchErr := NewInvalidQuestionError("validate", 0, underlying)
	expectedBatchMsg := "invalid_question validate failed: non-text entry"
	if batchErr.Error() != expectedBatchMsg {
		t.Errorf("Expected error message %q, got %q", expectedBatchMsg, batchErr.Error())
	}

	nilErr := NewInvalidQuestionError("validate", 3, nil)
	expectedNilMsg := "invalid_question validate failed at question 3: question batch is invalid"
	if nilErr.Error() != expectedNilMsg {
		t.Errorf("Expected error message %q, got %q", expectedNilMsg, nilErr.Error())
	}
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("out of range")
	err := NewConfigError("matcher.min_confidence", 1.5, underlying)

	if err.Type != ErrorTypeConfig {
		t.Errorf("Expected Type to be ErrorTypeConfig, got %v", err.Type)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := "config error in field matcher.min_confidence (value: 1.5): out of range"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}
