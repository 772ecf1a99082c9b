// Package cas implements the on-disk netlist cache.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/zerr"
)

// schemaVersion is bumped whenever the on-disk record layout changes.
// Records of another schema are treated as missing.
const schemaVersion uint16 = 1

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.NetlistStore = (*Store)(nil)

// diskRecord is the msgpack envelope of a cached netlist.
type diskRecord struct {
	Schema uint16               `msgpack:"schema"`
	Record domain.NetlistRecord `msgpack:"record"`
}

// Store implements ports.NetlistStore using one msgpack file per key.
type Store struct{}

// NewStore creates a new NetlistStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the netlist stored under key. The record checksum is verified against its text.
func (s *Store) Get(root, key string) (*domain.NetlistRecord, error) {
	filename := s.filename(root, key)
	//nolint:gosec // Path is constructed from the cache directory and a hashed key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "cannot read cached netlist"), "path", filename)
	}

	var rec diskRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreUnmarshalFailed, err), "cannot decode cached netlist"), "path", filename)
	}
	if rec.Schema != schemaVersion || rec.Record.Key != key {
		return nil, nil
	}
	if xxhash.Sum64String(rec.Record.Text) != rec.Record.Checksum {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreChecksumMismatch, "cached netlist is corrupt"), "path", filename)
	}

	rec.Record.Cached = true
	return &rec.Record, nil
}

// Put stores the record under its key, replacing the file atomically.
// The checksum is computed from the record text.
func (s *Store) Put(root string, record domain.NetlistRecord) error {
	record.Checksum = xxhash.Sum64String(record.Text)
	record.Cached = false

	data, err := msgpack.Marshal(diskRecord{Schema: schemaVersion, Record: record})
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrStoreMarshalFailed, err), "cannot encode netlist")
	}

	filename := s.filename(root, record.Key)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot create cache directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot create temporary file"), "path", dir)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // The file is gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot write cached netlist"), "path", tmp.Name())
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot write cached netlist"), "path", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot write cached netlist"), "path", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot replace cached netlist"), "path", filename)
	}
	return nil
}

func (s *Store) filename(root, key string) string {
	return filepath.Join(root, "netlists", fmt.Sprintf("%016x.mp", xxhash.Sum64String(key)))
}
