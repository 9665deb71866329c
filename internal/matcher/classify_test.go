package matcher

import (
	"testing"

	"github.com/standardbeagle/qsi/internal/types"
)

func TestClassifyQuestionType(t *testing.T) {
	tests := []struct {
		text string
		want types.QuestionType
	}{
		{"Define normalization", types.QuestionTypeShort},
		{"What is a B+ tree?", types.QuestionTypeShort},
		{"What are the ACID properties?", types.QuestionTypeShort},
		{"Explain the working of Dijkstra's algorithm", types.QuestionTypeBroad},
		{"Describe the OSI model layers", types.QuestionTypeBroad},
		{"Discuss deadlock prevention strategies", types.QuestionTypeBroad},
		{"Elaborate on two phase locking", types.QuestionTypeBroad},
		{"Choose the correct answer from the following", types.QuestionTypeMCQ},
		{"Which option best describes polymorphism?", types.QuestionTypeMCQ},
		{"MCQ: TCP operates at which layer?", types.QuestionTypeMCQ},
		{"Write a short note on paging", types.QuestionTypeOther},
		{"", types.QuestionTypeOther},
	}

	for _, tt := range tests {
		if got := ClassifyQuestionType(tt.text); got != tt.want {
			t.Errorf("ClassifyQuestionType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// MCQ markers win over broad-answer verbs, which win over short-answer
	// phrasing.
	if got := ClassifyQuestionType("Explain and choose the right option"); got != types.QuestionTypeMCQ {
		t.Errorf("mcq marker should win, got %q", got)
	}
	if got := ClassifyQuestionType("Explain what is recursion"); got != types.QuestionTypeBroad {
		t.Errorf("broad verb should win over short phrasing, got %q", got)
	}
	if got := ClassifyQuestionType("DEFINE entropy"); got != types.QuestionTypeShort {
		t.Errorf("matching is case-insensitive, got %q", got)
	}
}
