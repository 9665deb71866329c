package syllabus

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	qsierrors "github.com/standardbeagle/qsi/internal/errors"
)

// LoadJSON parses a structured JSON syllabus. Upstream sources use loose,
// inconsistent key names (subject vs subject_name vs title), so every entry
// is normalized into the tagged tree here rather than trusting the shape.
// Expects a JSON array of subject objects.
func LoadJSON(data []byte) (*Syllabus, error) {
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, qsierrors.NewMalformedSyllabusError("load_json", 0,
			fmt.Errorf("syllabus JSON should be a list of subjects: %w", err))
	}

	if len(raw) == 0 {
		return nil, qsierrors.NewMalformedSyllabusError("load_json", 0,
			errors.New("syllabus JSON contains no subjects"))
	}

	s := &Syllabus{}
	for _, item := range raw {
		subject := Subject{
			Code:     firstString(item, "subject_code", "code"),
			Name:     firstString(item, "subject", "subject_name", "title"),
			Year:     stringValue(item["year"]),
			Semester: stringValue(item["semester"]),
		}

		topics := stringList(firstValue(item, "topics", "syllabus"))
		if len(topics) > 0 {
			subject.Units = []Unit{{Lines: topics}}
		}

		subject.CourseOutcomes = stringList(firstValue(item, "course_outcomes", "course_outcome"))

		s.Subjects = append(s.Subjects, subject)
	}

	return s, nil
}

// firstString returns the first non-empty string found under the given keys
func firstString(item map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v := stringValue(item[key]); v != "" {
			return v
		}
	}
	return ""
}

// firstValue returns the first present value under the given keys
func firstValue(item map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := item[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// stringValue renders a scalar JSON value as a trimmed string
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON numbers for year/semester ("year": 2)
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	default:
		return ""
	}
}

// stringList renders a JSON value as a list of non-empty strings. A scalar
// string is split on bullet and separator characters the way semi-structured
// sources delimit topics.
func stringList(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := stringValue(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitTopics(t)
	default:
		return nil
	}
}
