package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Launch interactive shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

// runShell is a read-eval loop over the same command tree. Commands run
// strictly one at a time in input order; a failed command reports its
// error and the loop continues.
func (a *App) runShell(ctx context.Context) error {
	fmt.Println()
	fmt.Println("  Polymarket CLI · Interactive Shell")
	fmt.Println("  Type 'help' for commands, 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("polymarket> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		args := splitShellArgs(line)
		if blockedInShell(args) {
			fmt.Printf("%s is not available inside the shell.\n", args[0])
			continue
		}

		a.dispatchShellLine(ctx, args)

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("shell: reading input: %w", err)
	}

	fmt.Println("Goodbye!")
	return nil
}

// blockedInShell reports whether a top-level command may not run inside
// the shell. Nesting a shell is pointless, and watch ties its lifetime
// to the interrupt signal, so ending it would tear down the enclosing
// loop as well.
func blockedInShell(args []string) bool {
	return len(args) > 0 && (args[0] == "shell" || args[0] == "watch")
}

// dispatchShellLine runs one command line through a fresh command tree so
// flag state from a previous line cannot leak into the next.
func (a *App) dispatchShellLine(ctx context.Context, args []string) {
	sub := &App{
		cfgPath:    a.cfgPath,
		outputFlag: a.outputFlag,
		privateKey: a.privateKey,
		out:        a.out,
	}
	root := sub.newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		sub.out.Error(err)
	}
}

// splitShellArgs tokenizes a shell line on spaces, with double quotes
// grouping words into a single argument.
func splitShellArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, c := range input {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ' ' && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(c)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
