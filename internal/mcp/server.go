package mcp

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/qsi/internal/config"
	"github.com/standardbeagle/qsi/internal/debug"
	"github.com/standardbeagle/qsi/internal/matcher"
	"github.com/standardbeagle/qsi/internal/version"
)

// Server exposes the matching engine over MCP stdio. All state lives in the
// matcher and per-call arguments; the server itself holds no batch state, so
// concurrent tool calls are safe.
type Server struct {
	cfg     *config.Config
	matcher *matcher.Matcher
	server  *mcp.Server
}

// NewServer creates an MCP server backed by the given configuration
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m, err := matcher.New(cfg)
	if err != nil {
		return nil, err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "qsi-mcp-server",
		Version: version.Version,
	}, nil)

	s := &Server{cfg: cfg, matcher: m, server: server}
	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "match_questions",
		Description: "Match exam questions against a syllabus and return one scored record per question. Accepts the syllabus as structured JSON or raw text (auto-detected), and questions either pre-split or as a raw question-paper text.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"syllabus": {
					Type:        "string",
					Description: "Syllabus content: a JSON array of subject entries, or plain syllabus text",
				},
				"questions": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Pre-split questions, one string each",
				},
				"question_text": {
					Type:        "string",
					Description: "Raw question-paper text to split on numbering patterns (1., Q.1, 1)). Ignored when 'questions' is given",
				},
				"format": {
					Type:        "string",
					Description: "Output format: json (default), csv, or text",
				},
			},
			Required: []string{"syllabus"},
		},
	}, s.handleMatchQuestions)

	s.server.AddTool(&mcp.Tool{
		Name:        "parse_syllabus",
		Description: "Parse syllabus content (JSON array or plain text, auto-detected) into structured subjects and report the flattened segment index.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"content": {
					Type:        "string",
					Description: "Syllabus content to parse",
				},
			},
			Required: []string{"content"},
		},
	}, s.handleParseSyllabus)

	s.server.AddTool(&mcp.Tool{
		Name:        "split_questions",
		Description: "Split raw question-paper text into individual questions using numbering patterns (1., Q.1, 1)).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": {
					Type:        "string",
					Description: "Raw question-paper text",
				},
				"min_length": {
					Type:        "integer",
					Description: "Drop fragments with this many characters or fewer (default 10)",
				},
				"max_questions": {
					Type:        "integer",
					Description: "Cap on questions taken from the text (default 200)",
				},
			},
			Required: []string{"text"},
		},
	}, s.handleSplitQuestions)
}

// Start runs the server over stdio until the context is cancelled. Debug
// output is rerouted away from stdout first so it cannot corrupt the
// protocol stream.
func (s *Server) Start(ctx context.Context) error {
	debug.SetMCPMode(true)
	debug.LogMCP("starting MCP server (stdio)\n")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
