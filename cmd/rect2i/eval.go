package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/Sauermann/godot-cpp/internal/scenario"
	"github.com/Sauermann/godot-cpp/pkg/debug"
)

// errFailed is returned when any scenario step fails.
var errFailed = errors.New("scenario failures")

// runEval implements the eval subcommand.
func runEval(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Print passing steps")
	logPath := fs.String("log", "", "Path to debug log file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := initLog(*logPath); err != nil {
		return err
	}
	defer debug.Close()

	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("no scenario files specified")
	}

	files, err := collectScenarioFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scenario files found")
	}

	var failures int
	for _, path := range files {
		n, err := evalFile(path, *verbose, out)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			failures++
			continue
		}
		failures += n
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d", errFailed, failures)
	}
	return nil
}

// evalFile runs one scenario file and prints its results.
// Returns the number of failed steps.
func evalFile(path string, verbose bool, out io.Writer) (int, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return 0, err
	}
	debug.Log("evaluating %s (%d steps)", path, len(s.Steps))

	report := scenario.Run(s)
	for _, res := range report.Results {
		if !res.Failed() && !verbose {
			continue
		}
		fmt.Fprintln(out, formatResult(path, res))
	}

	failures := report.Failures()
	fmt.Fprintf(out, "%s: %d steps, %d failed\n", path, len(report.Results), failures)
	return failures, nil
}

func formatResult(path string, res scenario.Result) string {
	prefix := fmt.Sprintf("%s: step %d %s", path, res.Index, res.Op)
	switch {
	case res.Err != nil:
		return fmt.Sprintf("%s: FAIL %v", prefix, res.Err)
	case res.Checked && !res.Passed:
		return fmt.Sprintf("%s = %v: FAIL want %s", prefix, res.Value, res.Want)
	case res.Checked:
		return fmt.Sprintf("%s = %v: ok", prefix, res.Value)
	default:
		return fmt.Sprintf("%s = %v", prefix, res.Value)
	}
}

// collectScenarioFiles expands directories to the scenario files they hold.
func collectScenarioFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		for _, e := range entries {
			if !e.IsDir() && scenario.IsScenarioFile(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func initLog(path string) error {
	if path == "" {
		return debug.InitFromEnv()
	}
	return debug.Init(path)
}

func runOps(out io.Writer) {
	for _, name := range scenario.Ops() {
		fmt.Fprintln(out, name)
	}
}
