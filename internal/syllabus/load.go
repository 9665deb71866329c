package syllabus

import (
	"bytes"
)

// Load parses syllabus content in either supported form. Content whose
// first non-space byte opens a JSON array is treated as structured JSON;
// everything else goes through the plain-text parser.
func Load(data []byte) (*Syllabus, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return LoadJSON(trimmed)
	}
	return ParseText(string(data))
}
