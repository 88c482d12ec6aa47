// Package console talks to the person running toysetup.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"golang.org/x/term"
)

var (
	_ ports.Prompter = (*Console)(nil)
	_ ports.Reporter = (*Console)(nil)
)

// Console implements ports.Prompter and ports.Reporter on a pair of streams.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool

	bold   func(a ...any) string
	green  func(a ...any) string
	yellow func(a ...any) string
	red    func(a ...any) string
}

// New creates a Console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, interactive bool) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		bold:        color.New(color.Bold).SprintFunc(),
		green:       color.New(color.FgGreen).SprintFunc(),
		yellow:      color.New(color.FgYellow).SprintFunc(),
		red:         color.New(color.FgRed).SprintFunc(),
	}
}

// NewStdio creates a Console on the process's standard streams.
func NewStdio() *Console {
	return New(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd()))) //nolint:gosec // fd fits in int
}

type answer struct {
	line string
	err  error
}

// Confirm prints message followed by the [n/Y] prompt.
// An empty answer or one starting with y grants consent. Anything else,
// end of input included, is a refusal.
func (c *Console) Confirm(ctx context.Context, message string) (bool, error) {
	if !c.interactive {
		_, _ = fmt.Fprintln(c.out, c.yellow("stdin is not a terminal; pass --yes to skip this prompt"))
	}
	_, _ = fmt.Fprintf(c.out, "%s Is this ok [n/Y]: ", message)

	ch := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(c.out)
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && a.line == "" {
			// EOF before any answer.
			_, _ = fmt.Fprintln(c.out)
			return false, nil
		}
		return granted(a.line), nil
	}
}

func granted(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || line[0] == 'y' || line[0] == 'Y'
}

// Presence prints a checklist of detected tools.
func (c *Console) Presence(tools []domain.ToolPresence) {
	for _, tool := range tools {
		if tool.Found {
			detail := tool.Path
			if tool.Version != "" {
				detail = tool.Version + "  " + detail
			}
			_, _ = fmt.Fprintf(c.out, "%s %-10s %s\n", c.green("✓"), tool.Name, detail)
			continue
		}
		_, _ = fmt.Fprintf(c.out, "%s %-10s %s\n", c.red("✗"), tool.Name, "missing")
	}
}

// Summary prints the status of every pipeline step.
func (c *Console) Summary(steps []domain.StepReport) {
	for _, s := range steps {
		status := string(s.Status)
		switch s.Status {
		case domain.StepStatusCompleted:
			status = c.green(status)
		case domain.StepStatusCached:
			status = c.yellow("already done")
		case domain.StepStatusFailed:
			status = c.red(status)
		default:
		}
		_, _ = fmt.Fprintf(c.out, "  %-28s %s\n", s.Name, status)
	}
}

// Completion explains how to build and use the compiler.
func (c *Console) Completion(host domain.HostProfile, profile string) {
	_, _ = fmt.Fprintln(c.out)
	_, _ = fmt.Fprintln(c.out, c.green(c.bold("The ToyLang build toolchain is ready.")))
	if host.IsWindows() {
		_, _ = fmt.Fprintln(c.out, "Open a new terminal so the updated PATH and LIBCLANG_PATH take effect.")
	} else {
		_, _ = fmt.Fprintln(c.out, "Run `source "+shellquote.Join(profile)+
			"` or open a new shell so the exported variables take effect.")
	}
	_, _ = fmt.Fprintln(c.out, "Start the REPL with:        "+c.bold("cargo run -- --repl"))
	_, _ = fmt.Fprintln(c.out, "Or compile a .toy file with: "+c.bold("cargo run -- <PATH>"))
}
