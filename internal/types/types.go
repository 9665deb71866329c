package types

import "fmt"

// NotFound is the sentinel value used for ancestry fields that could not be
// determined. Matches the output contract consumed by downstream serializers.
const NotFound = "Not Found"

// SyllabusSegment is the finest-grained unit of syllabus text eligible for
// matching: a single topic line together with the full ancestry needed for
// reporting. Identity is the segment's position in the flattened index;
// segments are immutable once the index is built.
type SyllabusSegment struct {
	SubjectCode  string
	SubjectName  string
	YearSemester string
	TopicLabel   string
	LineText     string
}

// Question is a single free-text exam question with its 1-based position in
// the input batch. Supplied by the upstream extraction collaborator.
type Question struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// QuestionType classifies the expected answer format of a question
type QuestionType string

const (
	QuestionTypeMCQ   QuestionType = "MCQ"
	QuestionTypeShort QuestionType = "Short Answer"
	QuestionTypeBroad QuestionType = "Broad Answer"
	QuestionTypeOther QuestionType = "Other"
)

// MatchResult is the structured record produced for one question. Created by
// the matcher and never mutated afterwards.
type MatchResult struct {
	QuestionIndex int          `json:"index"`
	QuestionText  string       `json:"question_text"`
	SubjectCode   string       `json:"matched_subject_code"`
	SubjectName   string       `json:"matched_subject_name"`
	YearSemester  string       `json:"matched_year_semester"`
	TopicLabel    string       `json:"matched_topic_or_section"`
	SyllabusLine  string       `json:"matched_syllabus_line"`
	Confidence    float64      `json:"match_confidence_score"`
	LowConfidence bool         `json:"low_confidence"`
	QuestionType  QuestionType `json:"question_type"`
}

// IsValid checks the score invariant: confidence must stay in [0,1]
func (r MatchResult) IsValid() bool {
	return r.Confidence >= 0.0 && r.Confidence <= 1.0
}

// String returns a compact human-readable summary of a match
func (r MatchResult) String() string {
	return fmt.Sprintf("MatchResult{Q%d: %s/%s score=%.3f low=%v}",
		r.QuestionIndex, r.SubjectCode, r.TopicLabel, r.Confidence, r.LowConfidence)
}

// String returns a compact human-readable summary of a segment
func (s SyllabusSegment) String() string {
	return fmt.Sprintf("Segment{%s %s: %q}", s.SubjectCode, s.TopicLabel, s.LineText)
}
