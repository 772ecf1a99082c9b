package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer writes netlists into an output directory.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write replaces dir/name with data through a temporary file, so readers never see a partial netlist.
func (w *Writer) Write(dir, name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", zerr.With(zerr.Wrap(domain.ErrNetlistWriteFailed, "invalid file name"), "name", name)
	}
	path := filepath.Join(dir, name)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", writeError(err, "cannot create output directory", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", writeError(err, "cannot create temporary file", dir)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // The file is gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", writeError(err, "cannot write netlist", path)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return "", writeError(err, "cannot write netlist", path)
	}
	if err := tmp.Close(); err != nil {
		return "", writeError(err, "cannot write netlist", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", writeError(err, "cannot replace netlist", path)
	}
	return path, nil
}

func writeError(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrNetlistWriteFailed, err), msg), "path", path)
}
