// Package config loads design files into the circuit model.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the design file version this loader understands.
const SupportedVersion = "1"

var _ ports.DesignLoader = (*Loader)(nil)

// Loader implements ports.DesignLoader for YAML, TOML and HCL design files.
// The format is chosen by the file extension.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the design file at path.
func (l *Loader) Load(path string) (*domain.Design, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot load design"), "path", path)
	}

	file, err := Decode(path, data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if file.Version != "" && file.Version != SupportedVersion {
		l.logger.Warn("unsupported design file version, reading it as version "+SupportedVersion, "path", path, "version", file.Version)
	}

	design, err := file.Design()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return design, nil
}

// Decode parses data in the format given by the extension of path.
func Decode(path string, data []byte) (*DesignFile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".toml":
		return decodeTOML(data)
	case ".hcl":
		return decodeHCL(path, data)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot decode design"), "extension", filepath.Ext(path))
	}
}

func decodeYAML(data []byte) (*DesignFile, error) {
	var file DesignFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, parseError("yaml", err)
	}
	return &file, nil
}

func decodeTOML(data []byte) (*DesignFile, error) {
	var file DesignFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, parseError("toml", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		err := zerr.Wrap(domain.ErrConfigParseFailed, "unknown keys in design")
		return nil, zerr.With(zerr.With(err, "format", "toml"), "keys", strings.Join(keys, ", "))
	}
	return &file, nil
}

func parseError(format string, err error) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "cannot decode design"), "format", format)
}
