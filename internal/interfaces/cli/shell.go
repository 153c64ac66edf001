package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session sharing one order ledger",
		Long: `Start an interactive session. Every line is a retailctl command
without the leading program name, e.g.:

  > product list
  > order create --customer <id> --item <product-id>:2
  > order cancel 1

All commands in the session share the same in-memory order ledger, so
orders created here can be inspected, completed and cancelled. Type
'exit' or 'quit' to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "retailctl shell - type 'exit' to leave")
			fmt.Fprint(out, "> ")

			for in.Scan() {
				line := strings.TrimSpace(in.Text())
				switch line {
				case "":
					fmt.Fprint(out, "> ")
					continue
				case "exit", "quit":
					return nil
				}

				// a fresh command tree per line keeps flag state isolated;
				// the shell itself is removed so sessions cannot nest
				root := NewRootCmd(app)
				for _, sub := range root.Commands() {
					if sub.Name() == "shell" {
						root.RemoveCommand(sub)
					}
				}
				root.SetArgs(splitArgs(line))
				root.SetIn(strings.NewReader(""))
				root.SetOut(out)
				root.SetErr(cmd.ErrOrStderr())

				if err := root.ExecuteContext(cmd.Context()); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), FormatError(err))
				}
				fmt.Fprint(out, "> ")
			}
			return in.Err()
		},
	}
}

// splitArgs splits a shell line into arguments, honoring single and
// double quotes but not escapes.
func splitArgs(line string) []string {
	args := make([]string, 0, 8)
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
