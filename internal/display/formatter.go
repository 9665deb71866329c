package display

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/standardbeagle/qsi/internal/types"
)

// ResultFormatter renders a batch of match results in one of the supported
// output formats. Formatting is a pure function of the results, so identical
// batches always produce identical bytes.
type ResultFormatter struct {
	options FormatterOptions
}

// FormatterOptions controls result formatting
type FormatterOptions struct {
	Format string // "json", "csv", "text"
	Indent string // JSON indentation string
}

// NewResultFormatter creates a new result formatter
func NewResultFormatter(options FormatterOptions) *ResultFormatter {
	if options.Indent == "" {
		options.Indent = "  "
	}
	return &ResultFormatter{options: options}
}

// Format renders the results in the configured format
func (rf *ResultFormatter) Format(results []types.MatchResult) (string, error) {
	switch rf.options.Format {
	case "csv":
		return rf.formatCSV(results)
	case "text":
		return rf.formatText(results), nil
	default:
		return rf.formatJSON(results)
	}
}

// formatJSON renders results as a JSON array. Field order follows the
// result struct declaration, so output is byte-stable across runs.
func (rf *ResultFormatter) formatJSON(results []types.MatchResult) (string, error) {
	if results == nil {
		results = []types.MatchResult{}
	}
	data, err := json.MarshalIndent(results, "", rf.options.Indent)
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	return string(data), nil
}

// csvHeader mirrors the JSON field names so both formats stay in sync
var csvHeader = []string{
	"index",
	"question_text",
	"matched_subject_code",
	"matched_subject_name",
	"matched_year_semester",
	"matched_topic_or_section",
	"matched_syllabus_line",
	"match_confidence_score",
	"low_confidence",
	"question_type",
}

// formatCSV renders results as CSV with a fixed header row
func (rf *ResultFormatter) formatCSV(results []types.MatchResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.QuestionIndex),
			r.QuestionText,
			r.SubjectCode,
			r.SubjectName,
			r.YearSemester,
			r.TopicLabel,
			r.SyllabusLine,
			strconv.FormatFloat(r.Confidence, 'f', 4, 64),
			strconv.FormatBool(r.LowConfidence),
			string(r.QuestionType),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("writing csv record %d: %w", r.QuestionIndex, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return buf.String(), nil
}

// formatText renders a compact human-readable summary, one block per
// question
func (rf *ResultFormatter) formatText(results []types.MatchResult) string {
	if len(results) == 0 {
		return "No questions matched.\n"
	}

	var sb strings.Builder
	for _, r := range results {
		flag := ""
		if r.LowConfidence {
			flag = " [low confidence]"
		}
		sb.WriteString(fmt.Sprintf("Q%d. %s\n", r.QuestionIndex, r.QuestionText))
		sb.WriteString(fmt.Sprintf("  -> %s (%s) | %s | %s\n",
			r.SubjectName, r.SubjectCode, r.YearSemester, r.TopicLabel))
		sb.WriteString(fmt.Sprintf("  score %.4f%s | type %s\n", r.Confidence, flag, r.QuestionType))
	}
	return sb.String()
}
