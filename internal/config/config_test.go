package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "v1", cfg.Normalizer.StopWordSet)
	assert.True(t, cfg.Normalizer.Stemming)
	assert.Equal(t, 3, cfg.Normalizer.StemMinLength)
	assert.False(t, cfg.Similarity.OCRCorrection)
	assert.InDelta(t, 0.15, cfg.Matcher.MinConfidence, 1e-9)
	assert.Equal(t, 1, cfg.Matcher.Workers)
	assert.Equal(t, 200, cfg.Questions.MaxQuestions)
}

func TestParseKDLOverrides(t *testing.T) {
	content := `
version 1
normalizer {
    stop_words "none"
    stemming false
    stem_min_length 4
}
similarity {
    ocr_correction true
    ocr_threshold 0.9
}
matcher {
    min_confidence 0.3
    workers 8
}
questions {
    min_length 5
    max_questions 50
}
watch {
    debounce_ms 250
}
`
	cfg, err := parseKDL(content)
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.Normalizer.StopWordSet)
	assert.False(t, cfg.Normalizer.Stemming)
	assert.Equal(t, 4, cfg.Normalizer.StemMinLength)
	assert.True(t, cfg.Similarity.OCRCorrection)
	assert.InDelta(t, 0.9, cfg.Similarity.OCRThreshold, 1e-9)
	assert.InDelta(t, 0.3, cfg.Matcher.MinConfidence, 1e-9)
	assert.Equal(t, 8, cfg.Matcher.Workers)
	assert.Equal(t, 5, cfg.Questions.MinLength)
	assert.Equal(t, 50, cfg.Questions.MaxQuestions)
	assert.Equal(t, 250, cfg.Watch.DebounceMs)
}

func TestParseKDLPartialKeepsDefaults(t *testing.T) {
	cfg, err := parseKDL(`
matcher {
    min_confidence 0.25
}
`)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, cfg.Matcher.MinConfidence, 1e-9)
	// Untouched sections keep defaults
	assert.Equal(t, "v1", cfg.Normalizer.StopWordSet)
	assert.Equal(t, 200, cfg.Questions.MaxQuestions)
}

func TestParseKDLInlineChildren(t *testing.T) {
	// Children on one line need a node terminator before the closing brace.
	cfg, err := parseKDL(`matcher { workers 4; }`)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Matcher.Workers)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("matcher {\n    workers 4\n}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Matcher.Workers)
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	cfg := DefaultConfig()
	require.NoError(t, v.ValidateAndSetDefaults(cfg))

	bad := DefaultConfig()
	bad.Matcher.MinConfidence = 1.5
	assert.Error(t, v.ValidateAndSetDefaults(bad))

	bad = DefaultConfig()
	bad.Normalizer.StopWordSet = "v9"
	assert.Error(t, v.ValidateAndSetDefaults(bad))

	bad = DefaultConfig()
	bad.Questions.MaxQuestions = 0
	assert.Error(t, v.ValidateAndSetDefaults(bad))

	bad = DefaultConfig()
	bad.Similarity.OCRThreshold = -0.1
	assert.Error(t, v.ValidateAndSetDefaults(bad))
}

func TestMaxWorkersAutoDetect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matcher.Workers = 0
	assert.Greater(t, cfg.MaxWorkers(), 0)

	cfg.Matcher.Workers = 3
	assert.Equal(t, 3, cfg.MaxWorkers())
}
