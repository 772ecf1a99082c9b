package domain

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// DefinitionKind identifies what a Definition carries.
type DefinitionKind int

const (
	// DefinitionCode is inline source text.
	DefinitionCode DefinitionKind = iota
	// DefinitionLibrary is a path to an external library file.
	DefinitionLibrary
	// DefinitionPrimitive is built into the simulator and carries nothing.
	DefinitionPrimitive
)

func (k DefinitionKind) String() string {
	switch k {
	case DefinitionCode:
		return "code"
	case DefinitionLibrary:
		return "library"
	case DefinitionPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Definition is a top-level artifact emitted once per netlist.
// Two definitions are equal when kind and text are equal.
type Definition struct {
	Kind DefinitionKind
	Text string
}

// CodeDefinition returns an inline code definition.
func CodeDefinition(text string) Definition {
	return Definition{Kind: DefinitionCode, Text: text}
}

// LibraryDefinition returns a definition that refers to a library file.
func LibraryDefinition(path string) Definition {
	return Definition{Kind: DefinitionLibrary, Text: path}
}

// PrimitiveDefinition returns the definition of a simulator built-in.
func PrimitiveDefinition() Definition {
	return Definition{Kind: DefinitionPrimitive}
}

// LibraryPath returns the path of a library definition, checking that it can be written into a netlist line.
func (d Definition) LibraryPath() (string, error) {
	if d.Text == "" || !utf8.ValidString(d.Text) || strings.ContainsAny(d.Text, "\r\n") {
		return "", zerr.With(zerr.Wrap(ErrUnrepresentablePath, "cannot render library"), "path", d.Text)
	}
	return d.Text, nil
}

// DefinitionSet is an insertion-ordered set of definitions.
// The first occurrence of a definition fixes its position.
type DefinitionSet struct {
	items []Definition
	seen  map[Definition]struct{}
}

// NewDefinitionSet creates a set holding defs in order.
func NewDefinitionSet(defs ...Definition) *DefinitionSet {
	s := &DefinitionSet{seen: make(map[Definition]struct{}, len(defs))}
	for _, d := range defs {
		s.Add(d)
	}
	return s
}

// Add appends d unless an equal definition is already present. It reports whether d was added.
func (s *DefinitionSet) Add(d Definition) bool {
	if s.seen == nil {
		s.seen = make(map[Definition]struct{})
	}
	if _, ok := s.seen[d]; ok {
		return false
	}
	s.seen[d] = struct{}{}
	s.items = append(s.items, d)
	return true
}

// Extend adds every definition of other, in order.
func (s *DefinitionSet) Extend(other *DefinitionSet) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		s.Add(d)
	}
}

// All yields the definitions in insertion order.
func (s *DefinitionSet) All() iter.Seq[Definition] {
	return slices.Values(s.items)
}

// Len returns the number of distinct definitions.
func (s *DefinitionSet) Len() int {
	return len(s.items)
}

// Slice returns a copy of the definitions in insertion order.
func (s *DefinitionSet) Slice() []Definition {
	return slices.Clone(s.items)
}
