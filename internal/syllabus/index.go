package syllabus

import (
	"errors"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/qsi/internal/debug"
	qsierrors "github.com/standardbeagle/qsi/internal/errors"
	"github.com/standardbeagle/qsi/internal/types"
)

// CourseOutcomeLabel tags segments built from a subject's course outcomes
const CourseOutcomeLabel = "Course Outcome"

// Index is the flattened, read-only list of matchable segments. Segment
// identity is its position in Segments; the slice is never mutated after
// build.
type Index struct {
	Segments []types.SyllabusSegment

	// Dropped counts segments excluded because their subject lacked the
	// ancestry (code and name) required for reporting
	Dropped int
}

// BuildIndex walks the syllabus tree and flattens it into segments, each
// carrying the full ancestry needed for later reporting. Subjects missing
// both unit lines and course outcomes contribute nothing. Subjects missing
// their subject code or name have their lines dropped and counted rather
// than emitted half-populated.
func BuildIndex(s *Syllabus) (*Index, error) {
	if s == nil {
		return nil, qsierrors.NewMalformedSyllabusError("build_index", 0, errors.New("nil syllabus"))
	}

	index := &Index{}

	for _, subject := range s.Subjects {
		if subject.Code == "" || subject.Name == "" {
			dropped := subject.LineCount()
			index.Dropped += dropped
			debug.LogIndex("dropping %d segments: subject %q missing code or name\n", dropped, subject.Name)
			continue
		}

		yearSem := subject.YearSemester()
		if yearSem == "" {
			yearSem = types.NotFound
		}

		for _, unit := range subject.Units {
			for _, line := range unit.Lines {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				index.Segments = append(index.Segments, types.SyllabusSegment{
					SubjectCode:  subject.Code,
					SubjectName:  subject.Name,
					YearSemester: yearSem,
					TopicLabel:   topicLabel(unit.Label, line),
					LineText:     line,
				})
			}
		}

		for _, co := range subject.CourseOutcomes {
			co = strings.TrimSpace(co)
			if co == "" {
				continue
			}
			index.Segments = append(index.Segments, types.SyllabusSegment{
				SubjectCode:  subject.Code,
				SubjectName:  subject.Name,
				YearSemester: yearSem,
				TopicLabel:   CourseOutcomeLabel,
				LineText:     co,
			})
		}
	}

	debug.LogIndex("flattened %d segments (%d dropped)\n", len(index.Segments), index.Dropped)
	return index, nil
}

// topicLabel resolves the reporting label for a line: the unit label when
// present, otherwise the line's own "Heading:" prefix, otherwise the line
// itself truncated
func topicLabel(unitLabel, line string) string {
	if unitLabel != "" {
		return unitLabel
	}

	if idx := strings.Index(line, ":"); idx > 0 {
		return strings.TrimSpace(line[:idx])
	}

	if len(line) > 60 {
		return strings.TrimSpace(line[:60])
	}
	return line
}

// IsEmpty reports whether the index has no matchable segments
func (ix *Index) IsEmpty() bool {
	return len(ix.Segments) == 0
}

// Len returns the number of segments in the index
func (ix *Index) Len() int {
	return len(ix.Segments)
}

// Fingerprint returns a stable hash of the index contents, used to detect
// syllabus changes between runs
func (ix *Index) Fingerprint() uint64 {
	h := xxhash.New()
	for _, seg := range ix.Segments {
		h.WriteString(seg.SubjectCode)
		h.WriteString("\x00")
		h.WriteString(seg.SubjectName)
		h.WriteString("\x00")
		h.WriteString(seg.YearSemester)
		h.WriteString("\x00")
		h.WriteString(seg.TopicLabel)
		h.WriteString("\x00")
		h.WriteString(seg.LineText)
		h.WriteString("\x01")
	}
	return h.Sum64()
}
