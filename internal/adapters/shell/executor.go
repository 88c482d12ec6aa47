// Package shell provides the external process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run starts the command with exactly the environment it carries and waits for it.
//
// Output is split into lines and sent to the logger at debug level. When the context
// carries a vertex, the raw streams are also copied into it. With Capture set the
// combined output is returned in the Result.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) (domain.Result, error) {
	if cmd.Name == "" {
		return domain.Result{}, zerr.New("empty command")
	}

	env := cmd.Env
	if env == nil {
		env = os.Environ()
	}

	// Resolve the executable against the command's own PATH, not the parent's.
	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) {
		if lp, err := LookPath(cmd.Name, PathDirs(env)); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands are built by the provisioner
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = env

	stdout := &logWriter{logger: e.logger}
	stderr := &logWriter{logger: e.logger}
	var out, errOut io.Writer = stdout, stderr

	var captured syncBuffer
	if cmd.Capture {
		out = io.MultiWriter(out, &captured)
		errOut = io.MultiWriter(errOut, &captured)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		out = io.MultiWriter(out, v.Stdout())
		errOut = io.MultiWriter(errOut, v.Stderr())
	}
	c.Stdout = out
	c.Stderr = errOut

	e.logger.Debug("running " + cmd.String())
	runErr := c.Run()
	stdout.Flush()
	stderr.Flush()

	res := domain.Result{Output: captured.String()}
	if runErr == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", cmd.String())
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	return res, zerr.With(zerr.Wrap(runErr, "failed to start command"), "command", cmd.String())
}

// logWriter buffers partial writes and emits one debug record per complete line.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line: keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Flush emits any trailing line that was not newline-terminated.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	w.logger.Debug(line)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
