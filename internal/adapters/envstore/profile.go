package envstore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Profile persists variables as export lines in a POSIX shell profile.
type Profile struct {
	path   string
	logger ports.Logger
}

// NewProfile creates a Profile writing to path.
func NewProfile(path string, logger ports.Logger) *Profile {
	return &Profile{path: filepath.Clean(path), logger: logger}
}

// Persist appends the export line for m unless the profile already contains it.
func (p *Profile) Persist(ctx context.Context, m domain.EnvMutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := ExportLine(m)

	data, err := os.ReadFile(p.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to read shell profile"), "path", p.path)
	}
	if hasLine(data, line) {
		p.logger.Debug(p.path + " already exports " + m.Name)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create profile directory"), "path", p.path)
	}

	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // profile path is configured by the user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open shell profile"), "path", p.path)
	}

	var buf strings.Builder
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(line)
	buf.WriteByte('\n')

	if _, err := f.WriteString(buf.String()); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write shell profile"), "path", p.path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close shell profile"), "path", p.path)
	}

	p.logger.Info("added " + m.Name + " to " + p.path)
	return nil
}

// ExportLine renders m as a POSIX shell statement.
func ExportLine(m domain.EnvMutation) string {
	if m.PathLike {
		return "export " + m.Name + `="` + escapeDoubleQuoted(m.Value) + ":$" + m.Name + `"`
	}
	return "export " + m.Name + "=" + shellquote.Join(m.Value)
}

func escapeDoubleQuoted(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasLine(data []byte, line string) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == line {
			return true
		}
	}
	return false
}
