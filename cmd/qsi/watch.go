package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/qsi/internal/config"
	"github.com/standardbeagle/qsi/internal/debug"
)

// watchAndMatch re-runs the match whenever the syllabus or a question file
// changes. Events are debounced because editors fire several writes per
// save. Directories are watched rather than files: many editors replace
// files on save, which would drop a direct file watch.
func watchAndMatch(c *cli.Context, cfg *config.Config, syllabusPath string, questionFiles []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]struct{})
	for _, file := range append([]string{syllabusPath}, questionFiles...) {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", file, err)
		}
		watched[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	run := func() {
		if err := runMatch(ctx, c, cfg, syllabusPath, questionFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	run()

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, relevant := watched[abs]; !relevant {
				continue
			}
			debug.Log("watch", "%s changed, scheduling re-run\n", event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			fmt.Fprintln(os.Stderr, "--- inputs changed, re-running ---")
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case sig := <-sigChan:
			debug.Log("watch", "received signal %v, stopping\n", sig)
			return nil
		}
	}
}
