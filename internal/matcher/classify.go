package matcher

import (
	"regexp"

	"github.com/standardbeagle/qsi/internal/types"
)

// Question-type heuristics: interrogative phrasing signals the expected
// answer format. MCQ markers win over broad-answer verbs, which win over
// short-answer phrasing.
var (
	mcqRe   = regexp.MustCompile(`(?i)\bchoose\b|\boption\b|\bmcq\b|\(a\)|\ba\)`)
	broadRe = regexp.MustCompile(`(?i)\bexplain\b|\bdescribe\b|\bdiscuss\b|\belaborate\b`)
	shortRe = regexp.MustCompile(`(?i)\bdefine\b|\bwhat is\b|\bwhat are\b`)
)

// ClassifyQuestionType categorizes a question by its phrasing
func ClassifyQuestionType(text string) types.QuestionType {
	switch {
	case mcqRe.MatchString(text):
		return types.QuestionTypeMCQ
	case broadRe.MatchString(text):
		return types.QuestionTypeBroad
	case shortRe.MatchString(text):
		return types.QuestionTypeShort
	default:
		return types.QuestionTypeOther
	}
}
