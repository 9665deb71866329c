package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/qsi/internal/config"
	"github.com/standardbeagle/qsi/internal/version"
)

var Version = version.Version

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if c.IsSet("min-confidence") {
		cfg.Matcher.MinConfidence = c.Float64("min-confidence")
	}
	if c.IsSet("workers") {
		cfg.Matcher.Workers = c.Int("workers")
	}
	if c.IsSet("stop-words") {
		cfg.Normalizer.StopWordSet = c.String("stop-words")
	}
	if stopWordsFile := c.String("stop-words-file"); stopWordsFile != "" {
		abs, err := filepath.Abs(stopWordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve stop-words file %q: %w", stopWordsFile, err)
		}
		cfg.Normalizer.StopWordsFile = abs
	}
	if c.IsSet("ocr-correction") {
		cfg.Similarity.OCRCorrection = c.Bool("ocr-correction")
	}

	validator := config.NewValidator()
	if err := validator.ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:                   "qsi",
		Usage:                  "Match exam questions to syllabus topics with TF-IDF scoring",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.ConfigFileName,
			},
			&cli.Float64Flag{
				Name:  "min-confidence",
				Usage: "Flag matches scoring below this threshold (overrides config)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Parallel question workers, 0 = all CPUs (overrides config)",
			},
			&cli.StringFlag{
				Name:  "stop-words",
				Usage: "Built-in stop-word set: v1 or none (overrides config)",
			},
			&cli.StringFlag{
				Name:  "stop-words-file",
				Usage: "TOML file replacing the built-in stop-word list",
			},
			&cli.BoolFlag{
				Name:  "ocr-correction",
				Usage: "Map unknown question terms to the nearest syllabus term",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "match",
				Aliases:   []string{"m"},
				Usage:     "Match question papers against a syllabus",
				ArgsUsage: "QUESTION_FILES...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "syllabus",
						Aliases:  []string{"s"},
						Usage:    "Syllabus file (JSON array or plain text, auto-detected)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: json, csv, or text",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write results to file instead of stdout",
					},
					&cli.BoolFlag{
						Name:    "watch",
						Aliases: []string{"w"},
						Usage:   "Re-run matching whenever an input file changes",
					},
				},
				Action: matchCommand,
			},
			{
				Name:      "parse-syllabus",
				Aliases:   []string{"p"},
				Usage:     "Parse a syllabus file and print the structured subjects",
				ArgsUsage: "SYLLABUS_FILE",
				Action:    parseSyllabusCommand,
			},
			{
				Name:      "split",
				Usage:     "Split a question-paper text file into individual questions",
				ArgsUsage: "QUESTION_FILE",
				Action:    splitCommand,
			},
			{
				Name:   "serve",
				Usage:  "Run the MCP server on stdio",
				Action: serveCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
