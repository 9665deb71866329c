package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/qsi/internal/config"
	"github.com/standardbeagle/qsi/internal/debug"
	"github.com/standardbeagle/qsi/internal/display"
	"github.com/standardbeagle/qsi/internal/matcher"
	"github.com/standardbeagle/qsi/internal/questions"
	"github.com/standardbeagle/qsi/internal/syllabus"
	"github.com/standardbeagle/qsi/internal/types"
)

// expandQuestionFiles resolves question-file arguments. Each argument may be
// a literal path or a doublestar glob; the combined set is deduplicated and
// sorted so batch order does not depend on argument order quirks.
func expandQuestionFiles(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Not a glob hit; accept literal paths that exist.
			if _, statErr := os.Stat(pattern); statErr != nil {
				return nil, fmt.Errorf("no files match %q", pattern)
			}
			matches = []string{pattern}
		}
		for _, m := range matches {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// loadQuestionBatch reads and splits every question file, numbering the
// questions continuously across files in file order
func loadQuestionBatch(files []string, cfg *config.Config) ([]types.Question, error) {
	opts := questions.Options{
		MinLength:    cfg.Questions.MinLength,
		MaxQuestions: cfg.Questions.MaxQuestions,
	}

	var batch []types.Question
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading question file %s: %w", file, err)
		}
		for _, fragment := range questions.SplitText(string(data), opts) {
			batch = append(batch, types.Question{Index: len(batch) + 1, Text: fragment})
		}
		debug.Log("cli", "loaded %s, batch now %d questions\n", file, len(batch))
	}

	if cfg.Questions.MaxQuestions > 0 && len(batch) > cfg.Questions.MaxQuestions {
		batch = batch[:cfg.Questions.MaxQuestions]
	}
	return batch, nil
}

func loadSyllabusIndex(path string) (*syllabus.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading syllabus file %s: %w", path, err)
	}
	tree, err := syllabus.Load(data)
	if err != nil {
		return nil, err
	}
	index, err := syllabus.BuildIndex(tree)
	if err != nil {
		return nil, err
	}
	if index.Dropped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: dropped %d syllabus segments missing subject code or name\n", index.Dropped)
	}
	return index, nil
}

// runMatch executes one full match run and writes the formatted results
func runMatch(ctx context.Context, c *cli.Context, cfg *config.Config, syllabusPath string, questionFiles []string) error {
	index, err := loadSyllabusIndex(syllabusPath)
	if err != nil {
		return err
	}
	debug.LogIndex("syllabus index: %d segments, fingerprint %x\n", index.Len(), index.Fingerprint())

	batch, err := loadQuestionBatch(questionFiles, cfg)
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		return errors.New("no questions found in the given files")
	}

	m, err := matcher.New(cfg)
	if err != nil {
		return err
	}
	results, err := m.Assemble(ctx, batch, index)
	if err != nil {
		return err
	}

	formatter := display.NewResultFormatter(display.FormatterOptions{Format: c.String("format")})
	out, err := formatter.Format(results)
	if err != nil {
		return err
	}

	if outputPath := c.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing results to %s: %w", outputPath, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d results to %s\n", len(results), outputPath)
		return nil
	}
	fmt.Print(out)
	if out != "" && out[len(out)-1] != '\n' {
		fmt.Println()
	}
	return nil
}

func matchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("at least one question file is required")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "json", "csv", "text":
	default:
		return fmt.Errorf("unknown format %q (want json, csv, or text)", c.String("format"))
	}

	syllabusPath := c.String("syllabus")
	questionFiles, err := expandQuestionFiles(c.Args().Slice())
	if err != nil {
		return err
	}

	if c.Bool("watch") {
		return watchAndMatch(c, cfg, syllabusPath, questionFiles)
	}
	return runMatch(context.Background(), c, cfg, syllabusPath, questionFiles)
}

func parseSyllabusCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one syllabus file")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("reading syllabus file: %w", err)
	}
	tree, err := syllabus.Load(data)
	if err != nil {
		return err
	}
	index, err := syllabus.BuildIndex(tree)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(map[string]interface{}{
		"subjects":         tree.Subjects,
		"segment_count":    index.Len(),
		"dropped_segments": index.Dropped,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func splitCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one question file")
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("reading question file: %w", err)
	}

	batch := questions.Split(string(data), questions.Options{
		MinLength:    cfg.Questions.MinLength,
		MaxQuestions: cfg.Questions.MaxQuestions,
	})

	out, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
