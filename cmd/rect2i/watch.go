package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Sauermann/godot-cpp/internal/scenario"
	"github.com/Sauermann/godot-cpp/pkg/debug"
)

// runWatch implements the watch subcommand.
// It evaluates every scenario once, then again each time one changes.
func runWatch(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Print passing steps")
	logPath := fs.String("log", "", "Path to debug log file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := initLog(*logPath); err != nil {
		return err
	}
	defer debug.Close()

	dirs := fs.Args()
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return watch(ctx, dirs, *verbose, out)
}

func watch(ctx context.Context, dirs []string, verbose bool, out io.Writer) error {
	w, err := scenario.NewWatcher(dirs...)
	if err != nil {
		return fmt.Errorf("watching %v: %w", dirs, err)
	}
	defer w.Close()

	files, err := collectScenarioFiles(dirs)
	if err != nil {
		return err
	}
	for _, path := range files {
		if _, err := evalFile(path, verbose, out); err != nil {
			fmt.Fprintf(out, "%v\n", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			debug.Log("changed: %s", path)
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintf(out, "%s: removed\n", path)
				continue
			}
			if _, err := evalFile(path, verbose, out); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			debug.Log("watch error: %v", err)
			fmt.Fprintf(out, "watch error: %v\n", err)
		}
	}
}
