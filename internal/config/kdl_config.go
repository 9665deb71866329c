package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL loads configuration from a .qsi.kdl file
func LoadKDL(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return parseKDL(string(content))
}

// parseKDL parses KDL config content over the built-in defaults
func parseKDL(content string) (*Config, error) {
	cfg := DefaultConfig()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "normalizer":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "stop_words":
					if s, ok := firstStringArg(cn); ok {
						cfg.Normalizer.StopWordSet = s
					}
				case "stop_words_file":
					if s, ok := firstStringArg(cn); ok {
						cfg.Normalizer.StopWordsFile = s
					}
				case "stemming":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Normalizer.Stemming = b
					}
				case "stem_min_length":
					if v, ok := firstIntArg(cn); ok {
						cfg.Normalizer.StemMinLength = v
					}
				}
			}
		case "similarity":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "ocr_correction":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Similarity.OCRCorrection = b
					}
				case "ocr_threshold":
					if f, ok := firstFloatArg(cn); ok {
						cfg.Similarity.OCRThreshold = f
					}
				}
			}
		case "matcher":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "min_confidence":
					if f, ok := firstFloatArg(cn); ok {
						cfg.Matcher.MinConfidence = f
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Matcher.Workers = v
					}
				}
			}
		case "questions":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "min_length":
					if v, ok := firstIntArg(cn); ok {
						cfg.Questions.MinLength = v
					}
				case "max_questions":
					if v, ok := firstIntArg(cn); ok {
						cfg.Questions.MaxQuestions = v
					}
				}
			}
		case "watch":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Watch.DebounceMs = v
					}
				}
			}
		}
	}

	return cfg, nil
}

// Helper functions leveraging the kdl-go document model
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
