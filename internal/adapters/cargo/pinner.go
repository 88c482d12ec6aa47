// Package cargo edits the cargo configuration of the compiler checkout.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildConfigPinner = (*Pinner)(nil)

// ConfigPath is the cargo configuration file relative to the project root.
var ConfigPath = filepath.Join(".cargo", "config.toml")

// Pinner implements ports.BuildConfigPinner.
type Pinner struct{}

// NewPinner creates a new Pinner.
func NewPinner() *Pinner {
	return &Pinner{}
}

// PinTarget sets build.target in <projectRoot>/.cargo/config.toml, preserving every other key.
func (p *Pinner) PinTarget(ctx context.Context, projectRoot string, triple domain.TargetTriple) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(projectRoot, ConfigPath)
	doc := map[string]any{}
	if _, err := toml.DecodeFile(path, &doc); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to parse cargo configuration"), "path", path)
	}

	build, ok := doc["build"].(map[string]any)
	if !ok {
		build = map[string]any{}
	}
	if build["target"] == string(triple) {
		return nil
	}
	build["target"] = string(triple)
	doc["build"] = build

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode cargo configuration"), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cargo directory"), "path", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // project file, world readable
		return zerr.With(zerr.Wrap(err, "failed to write cargo configuration"), "path", path)
	}
	return nil
}
