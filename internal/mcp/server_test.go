package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/qsi/internal/types"
)

const syllabusJSON = `[
  {
    "subject_name": "Artificial Intelligence",
    "subject_code": "AI301",
    "topics": ["Bayes theorem and conditional probability", "Search strategies BFS and DFS"]
  },
  {
    "subject_name": "Database Management Systems",
    "subject_code": "CS302",
    "topics": ["Normalization and functional dependencies"]
  }
]`

func newServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(nil)
	require.NoError(t, err)
	return s
}

func callTool(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), params interface{}) *mcp.CallToolResult {
	t.Helper()
	paramsBytes, err := json.Marshal(params)
	require.NoError(t, err)

	result, err := handler(context.Background(), &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{
		Arguments: paramsBytes,
	}})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestNewServer(t *testing.T) {
	s := newServer(t)
	assert.NotNil(t, s.matcher)
	assert.NotNil(t, s.server)
}

func TestMatchQuestionsTool(t *testing.T) {
	s := newServer(t)

	result := callTool(t, s.handleMatchQuestions, MatchQuestionsParams{
		Syllabus:  syllabusJSON,
		Questions: []string{"Explain Bayes theorem with an example", "What is normalization?"},
	})
	assert.False(t, result.IsError)

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "AI301", results[0].SubjectCode)
	assert.Equal(t, "CS302", results[1].SubjectCode)
	assert.Equal(t, 1, results[0].QuestionIndex)
}

func TestMatchQuestionsToolSplitsRawText(t *testing.T) {
	s := newServer(t)

	result := callTool(t, s.handleMatchQuestions, MatchQuestionsParams{
		Syllabus:     syllabusJSON,
		QuestionText: "1. Explain Bayes theorem with a worked example.\n2. Discuss normalization and functional dependencies.",
	})
	assert.False(t, result.IsError)

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &results))
	require.Len(t, results, 2)
}

func TestMatchQuestionsToolErrors(t *testing.T) {
	s := newServer(t)

	// Missing syllabus.
	result := callTool(t, s.handleMatchQuestions, MatchQuestionsParams{
		Questions: []string{"Explain Bayes theorem"},
	})
	assert.True(t, result.IsError)

	// Missing both question inputs.
	result = callTool(t, s.handleMatchQuestions, MatchQuestionsParams{
		Syllabus: syllabusJSON,
	})
	assert.True(t, result.IsError)

	// Unknown format.
	result = callTool(t, s.handleMatchQuestions, MatchQuestionsParams{
		Syllabus:  syllabusJSON,
		Questions: []string{"Explain Bayes theorem"},
		Format:    "yaml",
	})
	assert.True(t, result.IsError)
}

func TestMatchQuestionsToolCSVFormat(t *testing.T) {
	s := newServer(t)

	result := callTool(t, s.handleMatchQuestions, MatchQuestionsParams{
		Syllabus:  syllabusJSON,
		Questions: []string{"Explain Bayes theorem"},
		Format:    "csv",
	})
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "matched_subject_code")
}

func TestParseSyllabusTool(t *testing.T) {
	s := newServer(t)

	result := callTool(t, s.handleParseSyllabus, ParseSyllabusParams{Content: syllabusJSON})
	assert.False(t, result.IsError)

	var parsed struct {
		SegmentCount    int `json:"segment_count"`
		DroppedSegments int `json:"dropped_segments"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &parsed))
	assert.Equal(t, 3, parsed.SegmentCount)
	assert.Equal(t, 0, parsed.DroppedSegments)

	result = callTool(t, s.handleParseSyllabus, ParseSyllabusParams{})
	assert.True(t, result.IsError)
}

func TestSplitQuestionsTool(t *testing.T) {
	s := newServer(t)

	result := callTool(t, s.handleSplitQuestions, SplitQuestionsParams{
		Text: "1. Define normalization in relational databases.\n2. Explain the two phase commit protocol in detail.",
	})
	assert.False(t, result.IsError)

	var parsed struct {
		Count     int              `json:"count"`
		Questions []types.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &parsed))
	assert.Equal(t, 2, parsed.Count)
	require.Len(t, parsed.Questions, 2)
	assert.Equal(t, 1, parsed.Questions[0].Index)

	result = callTool(t, s.handleSplitQuestions, SplitQuestionsParams{})
	assert.True(t, result.IsError)
}
