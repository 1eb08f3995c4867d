package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *App) *cobra.Command {
	var keepGoing, echo bool

	cmd := &cobra.Command{
		Use:   "replay FILE|-",
		Short: "Run session commands from a script",
		Long: `Execute session commands one line at a time, exactly as typed into the
shell. Blank lines and lines starting with '#' are skipped; 'quit' ends the
script. Replay stops at the first failing line unless --keep-going is set.`,
		Example: `  fittrack replay week1.txt
  printf 'user add Ann\nlog Running 30\nprogress\n' | fittrack replay -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return replay(app, in, cmd.OutOrStdout(), replayOptions{keepGoing: keepGoing, echo: echo})
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after a failing line")
	cmd.Flags().BoolVar(&echo, "echo", false, "Print each command before its output")
	return cmd
}

type replayOptions struct {
	keepGoing bool
	echo      bool
}

// replay feeds script lines to the session command tree. The first failure
// is returned with its line number; with keepGoing the remaining lines still
// run and the first failure is reported at the end.
func replay(app *App, in io.Reader, out io.Writer, opts replayOptions) error {
	var firstErr error
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if opts.echo {
			fmt.Fprintln(out, formatter.Dim("❯ "+line))
		}

		parts, err := splitShellArgs(line)
		if err != nil {
			fmt.Fprintln(out, formatError(err))
		} else {
			switch strings.ToLower(parts[0]) {
			case "quit", "exit":
				return firstErr
			case "help":
				fmt.Fprintln(out, shellHelp(app))
				continue
			}
			var output string
			output, err = execSessionCapture(app, parts)
			if output != "" {
				fmt.Fprintln(out, output)
			}
		}

		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !opts.keepGoing {
				return err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return firstErr
}
