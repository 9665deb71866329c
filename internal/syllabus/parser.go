package syllabus

import (
	"errors"
	"regexp"
	"strings"

	qsierrors "github.com/standardbeagle/qsi/internal/errors"
)

// Heuristics parser for common semi-structured syllabus layouts, for sources
// that arrive as plain OCR text rather than structured JSON.
var (
	// Subject headings look like "IT/PC/B/T/213 Database Management Systems"
	// or "(CS101) Introduction to Programming". The code token must carry a
	// digit or slash so ordinary capitalized prose is not mistaken for one.
	subjectHeadingRe = regexp.MustCompile(`^\s*\(?([A-Z][A-Z0-9/]*(?:/[A-Z0-9/]+|[0-9][A-Z0-9/]*))\)?[ \t]*[-:)]?[ \t]*(\S.*)$`)

	yearSemRe = regexp.MustCompile(`(?i)(\d+(?:st|nd|rd|th)\s+Year)(?:.{0,40}?(\d+(?:st|nd|rd|th)\s+Semester))?`)

	unitHeadingRe = regexp.MustCompile(`(?i)^(Module|Unit|Chapter)\b`)

	courseOutcomeRe = regexp.MustCompile(`(?i)^(course outcomes?|learning outcomes?|course objectives?)[:\-\s]*`)

	topicSplitRe = regexp.MustCompile(`[\n\x{2022};\x{2013}-]+`)
)

// ParseText parses raw syllabus text into the tagged tree. Blocks are split
// on subject headings when any are found, otherwise on blank-line
// paragraphs. Year/semester found anywhere in the document back-fills
// subjects that did not state their own.
func ParseText(raw string) (*Syllabus, error) {
	raw = strings.ReplaceAll(raw, "\r", "\n")
	if strings.TrimSpace(raw) == "" {
		return nil, qsierrors.NewMalformedSyllabusError("parse_text", 0,
			errors.New("syllabus text is empty"))
	}

	lines := strings.Split(raw, "\n")

	var headingIdx []int
	for i, line := range lines {
		if subjectHeadingRe.MatchString(line) {
			headingIdx = append(headingIdx, i)
		}
	}

	s := &Syllabus{}
	if len(headingIdx) == 0 {
		for _, para := range strings.Split(raw, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			s.Subjects = append(s.Subjects, parseBlock(para))
		}
	} else {
		for idx, start := range headingIdx {
			end := len(lines)
			if idx+1 < len(headingIdx) {
				end = headingIdx[idx+1]
			}
			block := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
			if block == "" {
				continue
			}
			s.Subjects = append(s.Subjects, parseBlock(block))
		}
	}

	// Year/semester usually appears once as a document-level header
	if m := yearSemRe.FindStringSubmatch(raw); m != nil {
		year := strings.TrimSpace(m[1])
		sem := strings.TrimSpace(m[2])
		for i := range s.Subjects {
			if s.Subjects[i].Year == "" {
				s.Subjects[i].Year = year
			}
			if s.Subjects[i].Semester == "" {
				s.Subjects[i].Semester = sem
			}
		}
	}

	if len(s.Subjects) == 0 {
		return nil, qsierrors.NewMalformedSyllabusError("parse_text", 0,
			errors.New("no subject blocks could be extracted"))
	}

	return s, nil
}

// parseBlock parses one subject block: the first line is the heading, the
// rest is scanned for topic lines and course outcomes
func parseBlock(block string) Subject {
	blockLines := strings.Split(block, "\n")
	first := blockLines[0]

	var subject Subject
	if m := subjectHeadingRe.FindStringSubmatch(first); m != nil {
		subject.Code = strings.TrimSpace(m[1])
		subject.Name = strings.TrimSpace(m[2])
	} else {
		subject.Name = strings.TrimSpace(first)
	}

	topics, outcomes := extractTopicsAndOutcomes(blockLines)
	if len(topics) > 0 {
		subject.Units = []Unit{{Lines: topics}}
	}
	subject.CourseOutcomes = outcomes

	return subject
}

// extractTopicsAndOutcomes scans the lines after the heading. Once a course
// outcome header is seen, subsequent lines collect as outcomes.
func extractTopicsAndOutcomes(blockLines []string) (topics, outcomes []string) {
	coMode := false

	for _, line := range blockLines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if courseOutcomeRe.MatchString(line) {
			coMode = true
			if remainder := strings.TrimSpace(courseOutcomeRe.ReplaceAllString(line, "")); remainder != "" {
				outcomes = append(outcomes, remainder)
			}
			continue
		}

		if coMode {
			outcomes = append(outcomes, line)
			continue
		}

		if isTopicLine(line) {
			topics = append(topics, line)
		}
	}

	return dedupe(topics), dedupe(outcomes)
}

// isTopicLine applies the same heuristics the semi-structured sources
// follow: bullet markers, delimited phrases, Module/Unit/Chapter headings,
// or short lines
func isTopicLine(line string) bool {
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return true
	}
	if strings.Contains(line, ",") || strings.Contains(line, ":") {
		return true
	}
	if unitHeadingRe.MatchString(line) {
		return true
	}
	return len(strings.Fields(line)) <= 12
}

// splitTopics splits a scalar topics string on bullets, semicolons,
// newlines, and dashes
func splitTopics(text string) []string {
	parts := topicSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dedupe removes duplicates while preserving first-seen order
func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}

	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
