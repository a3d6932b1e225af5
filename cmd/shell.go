package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"

	"today/internal/task"
)

// shellCommand runs the interactive prompt. Lines are split with shell
// quoting rules and dispatched to the same handlers as the CLI.
func shellCommand(ctx context.Context, st *task.Store, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, `Interactive mode. Type "help" for commands, "quit" to exit.`)

	scanner := bufio.NewScanner(in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(out, "tasks> ")
		if !scanner.Scan() {
			// End of input behaves like quit
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "help" {
			printShellHelp(out)
			continue
		}

		argv, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(out, "Parse error: %v\n", err)
			continue
		}
		if len(argv) == 0 {
			continue
		}
		if err := dispatchShell(st, out, argv); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// dispatchShell routes a parsed shell line to the matching command handler.
func dispatchShell(st *task.Store, out io.Writer, argv []string) error {
	switch argv[0] {
	case "add":
		return addCommand(st, out, argv[1:])
	case "list":
		return listCommand(st, out, argv[1:])
	case "done":
		return markCommand(st, out, argv[1:], true)
	case "undone":
		return markCommand(st, out, argv[1:], false)
	case "remove":
		return removeCommand(st, out, argv[1:])
	default:
		return fmt.Errorf("unknown command: %s", argv[0])
	}
}

func printShellHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, `  add "task text" [--due 14:30|2:30PM]`)
	fmt.Fprintln(out, "  list")
	fmt.Fprintln(out, "  done ID")
	fmt.Fprintln(out, "  undone ID")
	fmt.Fprintln(out, "  remove ID")
	fmt.Fprintln(out, "  quit")
}
