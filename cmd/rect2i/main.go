// Package main provides the CLI tool for evaluating rectangle scenarios.
//
// Usage:
//
//	rect2i eval [file...]     Evaluate scenario files and report failures
//	rect2i watch [dir...]     Re-evaluate scenarios whenever they change
//	rect2i ops                List supported scenario operations
//	rect2i help               Show help
//
// Examples:
//
//	rect2i eval testdata/hud.yaml
//	rect2i eval -v ./scenarios
//	rect2i watch -log /tmp/rect2i.log ./scenarios
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `rect2i - evaluate Rect2i scenarios

Usage:
  rect2i <command> [options] [path...]

Commands:
  eval        Evaluate scenario files (a directory means every .yaml/.yml in it)
  watch       Watch directories and re-evaluate scenarios when they change
  ops         List supported scenario operations
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output (print passing steps too)
  -log path   Append debug logging to path (default: $RECT2I_DEBUG)

Examples:
  rect2i eval hud.yaml                 Evaluate one scenario
  rect2i eval -v ./scenarios           Evaluate every scenario in a directory
  rect2i watch ./scenarios             Re-run scenarios on save
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "eval":
		if err := runEval(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "ops":
		runOps(os.Stdout)
	case "version":
		fmt.Printf("rect2i version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
