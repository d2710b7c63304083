// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package brewbump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Patcher rewrites formula files on a file system
type Patcher struct {
	fs      afero.Fs
	targets []Target
}

// NewPatcher creates a Patcher
//
// targets lists checksum owners in document order, DefaultTargets is used when empty
func NewPatcher(fsys afero.Fs, targets ...Target) *Patcher {
	if len(targets) == 0 {
		targets = DefaultTargets()
	}
	return &Patcher{
		fs:      fsys,
		targets: targets,
	}
}

// Targets returns the checksum owners in document order
func (p *Patcher) Targets() []Target {
	return p.targets
}

// Patch updates the checksum for params.Target and then every version tag
//
// The two updates are separate writes: if the process dies in between, the formula
// is left with the new checksum and the old tag.
func (p *Patcher) Patch(ctx context.Context, params Params) error {
	logger := log.FromContext(ctx)

	if !validTag(params.Tag) {
		logger.Warn("tag is not of the form vMAJOR.MINOR.PATCH", "tag", params.Tag)
	}

	err := p.rewrite(params.FormulaPath, func(contents string) (string, error) {
		return ReplaceChecksum(contents, p.targets, params.Target, params.Hash)
	})
	if err != nil {
		return err
	}
	logger.Debug("updated checksum", "target", params.Target, "path", params.FormulaPath)

	err = p.rewrite(params.FormulaPath, func(contents string) (string, error) {
		return ReplaceTag(contents, params.Tag), nil
	})
	if err != nil {
		return err
	}
	logger.Debug("updated tag", "tag", params.Tag, "path", params.FormulaPath)

	return nil
}

// Preview runs Patch against a copy-on-write layer and returns the resulting formula
//
// The underlying file system is never written to.
func (p *Patcher) Preview(ctx context.Context, params Params) (string, error) {
	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(p.fs), afero.NewMemMapFs())

	dry := &Patcher{fs: overlay, targets: p.targets}
	if err := dry.Patch(ctx, params); err != nil {
		return "", err
	}

	b, err := afero.ReadFile(overlay, params.FormulaPath)
	if err != nil {
		return "", fmt.Errorf("failed to read patched formula: %w", err)
	}
	return string(b), nil
}

// rewrite reads path, applies fn and writes the result back through the same handle
//
// Nothing is written if fn returns an error.
func (p *Patcher) rewrite(path string, fn func(string) (string, error)) (err error) {
	f, err := p.fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open formula: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read formula: %w", err)
	}

	contents, err := fn(string(b))
	if err != nil {
		return err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	n, err := f.WriteString(contents)
	if err != nil {
		return fmt.Errorf("failed to write formula: %w", err)
	}
	return f.Truncate(int64(n))
}
