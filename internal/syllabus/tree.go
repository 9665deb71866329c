package syllabus

// Syllabus is the explicit tagged hierarchy the indexer walks:
// subject → year/semester → unit → topic line. Loaders produce this tree;
// BuildIndex validates it. The loose duck-typed mappings some upstream
// sources provide are normalized into this shape at load time so that a
// missing ancestry field is a visible condition, not a latent nil access.
type Syllabus struct {
	Subjects []Subject
}

// Subject is one course in the syllabus with its identifying ancestry
type Subject struct {
	Code           string   `json:"subject_code"`
	Name           string   `json:"subject_name"`
	Year           string   `json:"year,omitempty"`
	Semester       string   `json:"semester,omitempty"`
	Units          []Unit   `json:"units,omitempty"`
	CourseOutcomes []string `json:"course_outcomes,omitempty"`
}

// Unit groups topic lines under a unit/module label. Sources without unit
// structure load as a single unlabeled unit.
type Unit struct {
	Label string   `json:"label,omitempty"`
	Lines []string `json:"lines"`
}

// YearSemester renders the subject's year/semester ancestry as one field
func (s Subject) YearSemester() string {
	switch {
	case s.Year != "" && s.Semester != "":
		return s.Year + " " + s.Semester
	case s.Year != "":
		return s.Year
	case s.Semester != "":
		return s.Semester
	default:
		return ""
	}
}

// LineCount returns the number of matchable lines in the subject, including
// course outcomes
func (s Subject) LineCount() int {
	count := len(s.CourseOutcomes)
	for _, u := range s.Units {
		count += len(u.Lines)
	}
	return count
}
