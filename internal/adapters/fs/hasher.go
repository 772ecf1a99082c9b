// Package fs implements the file-system adapters: cache keys and netlist output.
package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes netlist cache keys.
type Hasher struct {
	version string
}

// NewHasher creates a new Hasher. Keys computed by different versions never collide.
func NewHasher(version string) *Hasher {
	return &Hasher{version: version}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeNetlistKey hashes the design file content, the target and the simulator name.
func (h *Hasher) ComputeNetlistKey(designPath string, target domain.Target, simulator string) (string, error) {
	content, err := h.ComputeFileHash(designPath)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	writeField(hasher, h.version)
	if err := binary.Write(hasher, binary.LittleEndian, content); err != nil {
		return "", zerr.Wrap(err, "failed to write hash to digest")
	}
	writeField(hasher, target.Entity)
	writeField(hasher, target.Architecture)
	writeField(hasher, simulator)

	// Overrides in a deterministic order.
	for _, entity := range slices.Sorted(maps.Keys(target.Overrides)) {
		_, _ = hasher.WriteString(entity)
		_, _ = hasher.Write([]byte{'='})
		writeField(hasher, target.Overrides[entity])
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0}) // Separator
}
