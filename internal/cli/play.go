package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danieljhkim/pushswap/internal/input"
	"github.com/danieljhkim/pushswap/internal/replay"
	"github.com/danieljhkim/pushswap/internal/stack"
)

const playPrompt = "op> "

// lineReader is the part of liner.State a play session needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// plainReader reads lines from a pipe or file without prompting.
type plainReader struct {
	scanner *bufio.Scanner
}

func (r *plainReader) Prompt(string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *plainReader) AppendHistory(string) {}

func (r *plainReader) Close() error { return nil }

// newLineReader uses liner when in is an interactive terminal.
func newLineReader(in io.Reader) lineReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		l := liner.NewLiner()
		l.SetCtrlCAborts(true)
		l.SetCompleter(completeOp)
		return l
	}
	return &plainReader{scanner: bufio.NewScanner(in)}
}

// completeOp completes operation symbols and session commands.
func completeOp(line string) []string {
	words := append(stack.Strings(stack.Ops), "undo", "quit", "exit")
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, strings.ToLower(line)) {
			out = append(out, w)
		}
	}
	return out
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play [numbers...]",
		Short: "Apply operations interactively and watch both stacks",
		Long: `Start an interactive session on the given numbers. Enter one or more
operations per line; both stacks are redrawn after each line.

"undo" reverts the last operation. "quit", "exit" or end of input ends the
session and prints OK or KO; operations before them on the same line are
applied first. An unknown operation ends the session with an error.`,
		Example: `  pushswap play 3 1 2
  printf 'pb\nsa\npa\n' | pushswap play 2 3 1`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := input.Parse(args)
			if err != nil {
				return err
			}
			if err := a.setup(cmd); err != nil {
				return err
			}

			lr := newLineReader(cmd.InOrStdin())
			defer lr.Close()
			return a.play(cmd.OutOrStdout(), lr, stack.New(values))
		},
	}
}

// play runs a session on m until the reader is exhausted or quit is
// entered.
func (a *app) play(w io.Writer, lr lineReader, m *stack.Machine) error {
	var applied []stack.Op
	renderStacks(w, m)

	for {
		line, err := lr.Prompt(playPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lr.AppendHistory(strings.Join(fields, " "))

		done := false
		for _, field := range fields {
			if field == "quit" || field == "exit" {
				done = true
				break
			}
			if field == "undo" {
				if len(applied) == 0 {
					printWarning(w, "nothing to undo")
					continue
				}
				last := applied[len(applied)-1]
				if err := m.Undo(last); err != nil {
					return err
				}
				applied = applied[:len(applied)-1]
				continue
			}

			op, err := stack.ParseOp(field)
			if err != nil {
				return err
			}
			if err := m.Execute(op); err != nil {
				if errors.Is(err, stack.ErrEmptyStack) {
					printWarning(w, err.Error())
					continue
				}
				return err
			}
			applied = append(applied, op)
		}
		if done {
			break
		}
		renderStacks(w, m)
	}

	a.log.V(1).Info("session ended", "ops", len(applied))
	printLabelValue(w, "Applied", countLabel(len(applied), "operation", "operations"))
	printVerdict(w, replay.VerdictOf(m))
	return nil
}
