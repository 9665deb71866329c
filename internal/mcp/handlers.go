package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/qsi/internal/debug"
	"github.com/standardbeagle/qsi/internal/display"
	"github.com/standardbeagle/qsi/internal/questions"
	"github.com/standardbeagle/qsi/internal/syllabus"
	"github.com/standardbeagle/qsi/internal/types"
)

// MatchQuestionsParams are the arguments for the match_questions tool
type MatchQuestionsParams struct {
	Syllabus     string   `json:"syllabus"`
	Questions    []string `json:"questions"`
	QuestionText string   `json:"question_text"`
	Format       string   `json:"format"`
}

// ParseSyllabusParams are the arguments for the parse_syllabus tool
type ParseSyllabusParams struct {
	Content string `json:"content"`
}

// SplitQuestionsParams are the arguments for the split_questions tool
type SplitQuestionsParams struct {
	Text         string `json:"text"`
	MinLength    int    `json:"min_length"`
	MaxQuestions int    `json:"max_questions"`
}

func (s *Server) handleMatchQuestions(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params MatchQuestionsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("match_questions", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Syllabus == "" {
		return createErrorResponse("match_questions", errors.New("syllabus content is required"))
	}

	batch, err := s.questionBatch(params)
	if err != nil {
		return createErrorResponse("match_questions", err)
	}
	if err := questions.Validate(batch); err != nil {
		return createErrorResponse("match_questions", err)
	}

	tree, err := syllabus.Load([]byte(params.Syllabus))
	if err != nil {
		return createErrorResponse("match_questions", err)
	}
	index, err := syllabus.BuildIndex(tree)
	if err != nil {
		return createErrorResponse("match_questions", err)
	}
	debug.LogMCP("match_questions: %d questions against %d segments\n", len(batch), index.Len())

	results, err := s.matcher.Assemble(ctx, batch, index)
	if err != nil {
		return createErrorResponse("match_questions", err)
	}

	switch params.Format {
	case "", "json":
		return createJSONResponse(results)
	case "csv", "text":
		formatter := display.NewResultFormatter(display.FormatterOptions{Format: params.Format})
		out, err := formatter.Format(results)
		if err != nil {
			return createErrorResponse("match_questions", err)
		}
		return createTextResponse(out)
	default:
		return createErrorResponse("match_questions", fmt.Errorf("unknown format %q", params.Format))
	}
}

// questionBatch resolves the two question inputs: pre-split questions win,
// otherwise the raw text is split on numbering patterns.
func (s *Server) questionBatch(params MatchQuestionsParams) ([]types.Question, error) {
	if len(params.Questions) > 0 {
		batch := make([]types.Question, len(params.Questions))
		for i, text := range params.Questions {
			batch[i] = types.Question{Index: i + 1, Text: text}
		}
		return batch, nil
	}
	if params.QuestionText == "" {
		return nil, errors.New("either 'questions' or 'question_text' is required")
	}

	batch := questions.Split(params.QuestionText, questions.Options{
		MinLength:    s.cfg.Questions.MinLength,
		MaxQuestions: s.cfg.Questions.MaxQuestions,
	})
	if len(batch) == 0 {
		return nil, errors.New("no questions found in question_text")
	}
	return batch, nil
}

func (s *Server) handleParseSyllabus(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ParseSyllabusParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("parse_syllabus", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Content == "" {
		return createErrorResponse("parse_syllabus", errors.New("syllabus content is required"))
	}

	tree, err := syllabus.Load([]byte(params.Content))
	if err != nil {
		return createErrorResponse("parse_syllabus", err)
	}
	index, err := syllabus.BuildIndex(tree)
	if err != nil {
		return createErrorResponse("parse_syllabus", err)
	}

	return createJSONResponse(map[string]interface{}{
		"subjects":         tree.Subjects,
		"segment_count":    index.Len(),
		"dropped_segments": index.Dropped,
	})
}

func (s *Server) handleSplitQuestions(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params SplitQuestionsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("split_questions", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Text == "" {
		return createErrorResponse("split_questions", errors.New("text is required"))
	}

	opts := questions.Options{
		MinLength:    s.cfg.Questions.MinLength,
		MaxQuestions: s.cfg.Questions.MaxQuestions,
	}
	if params.MinLength > 0 {
		opts.MinLength = params.MinLength
	}
	if params.MaxQuestions > 0 {
		opts.MaxQuestions = params.MaxQuestions
	}

	batch := questions.Split(params.Text, opts)
	return createJSONResponse(map[string]interface{}{
		"count":     len(batch),
		"questions": batch,
	})
}
