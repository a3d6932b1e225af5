// Package cmd implements the CLI command structure for today.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"today/internal/config"
	"today/internal/task"
	"today/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the today CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("today", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	remainingArgs := fs.Args()
	if len(remainingArgs) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("missing command")
	}
	subcommand := remainingArgs[0]
	remainingArgs = remainingArgs[1:]

	st := task.NewStore(cfg.StoreFile)

	switch subcommand {
	case "add":
		return addCommand(st, os.Stdout, remainingArgs)
	case "list":
		return listCommand(st, os.Stdout, remainingArgs)
	case "done":
		return markCommand(st, os.Stdout, remainingArgs, true)
	case "undone":
		return markCommand(st, os.Stdout, remainingArgs, false)
	case "remove":
		return removeCommand(st, os.Stdout, remainingArgs)
	case "shell":
		if len(remainingArgs) > 0 {
			return fmt.Errorf("unexpected arguments: %v", remainingArgs)
		}
		return shellCommand(ctx, st, os.Stdin, os.Stdout)
	case "ui":
		if len(remainingArgs) > 0 {
			return fmt.Errorf("unexpected arguments: %v", remainingArgs)
		}
		return ui.RunUI(ctx, st)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints version information.
func versionCommand(out io.Writer) error {
	fmt.Fprintf(out, "today version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Today - Simple today-task tracker (add, list, check off)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  today [options] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <text>    Add a new task (--due accepts 14:30 or 2:30PM)")
	fmt.Fprintln(w, "  list          List tasks")
	fmt.Fprintln(w, "  done <id>     Mark task as done")
	fmt.Fprintln(w, "  undone <id>   Mark task as not done")
	fmt.Fprintln(w, "  remove <id>   Remove a task")
	fmt.Fprintln(w, "  shell         Start interactive prompt")
	fmt.Fprintln(w, "  ui            Start interactive UI")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
