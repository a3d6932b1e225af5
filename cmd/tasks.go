package cmd

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"today/internal/task"
)

// parseInterleaved parses flags that may appear before or after the
// positional arguments and returns the positionals in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// addCommand adds a new task.
func addCommand(st *task.Store, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("today add", flag.ContinueOnError)
	due := fs.String("due", "", "Due time, e.g. 14:30 or 2:30PM")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if len(positional) == 0 {
		return fmt.Errorf("missing task text")
	}
	if len(positional) > 1 {
		return fmt.Errorf("unexpected arguments: %v", positional[1:])
	}

	added, err := st.Add(positional[0], *due)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added #%d: %s\n", added.ID, added.Text)
	return nil
}

// listCommand prints the tasks, open before done, earliest due first.
func listCommand(st *task.Store, out io.Writer, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	tasks, err := st.Load()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks yet.")
		return nil
	}
	for _, t := range task.SortedForDisplay(tasks) {
		fmt.Fprintln(out, t.Line())
	}
	return nil
}

// markCommand sets the done flag on a task.
func markCommand(st *task.Store, out io.Writer, args []string, done bool) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	marked, found, err := st.Mark(id, done)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "Task #%d not found.\n", id)
		return nil
	}
	if done {
		fmt.Fprintf(out, "Marked done: #%d %s\n", marked.ID, marked.Text)
	} else {
		fmt.Fprintf(out, "Marked not done: #%d %s\n", marked.ID, marked.Text)
	}
	return nil
}

// removeCommand deletes a task.
func removeCommand(st *task.Store, out io.Writer, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	found, err := st.Remove(id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "Task #%d not found.\n", id)
		return nil
	}
	fmt.Fprintf(out, "Removed task #%d.\n", id)
	return nil
}

// parseID extracts the single integer id argument.
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing task id")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, nil
}
