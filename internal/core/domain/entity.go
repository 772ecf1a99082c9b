package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Entity is a reusable block with named generics, named ports and one or more architectures.
// It is immutable once built and shared by every instance that refers to it.
type Entity struct {
	name          string
	generics      []string
	ports         []string
	archNames     []string
	architectures map[string]Architecture
}

// Name returns the entity name.
func (e *Entity) Name() string {
	return e.name
}

// Generics returns the generic names in declared order.
func (e *Entity) Generics() []string {
	return slices.Clone(e.generics)
}

// Ports returns the port names in declared order.
func (e *Entity) Ports() []string {
	return slices.Clone(e.ports)
}

// HasGeneric reports whether the entity declares the generic.
func (e *Entity) HasGeneric(name string) bool {
	return slices.Contains(e.generics, name)
}

// HasPort reports whether the entity declares the port.
func (e *Entity) HasPort(name string) bool {
	return slices.Contains(e.ports, name)
}

// Architecture returns the architecture stored under name.
func (e *Entity) Architecture(name string) (Architecture, bool) {
	arch, ok := e.architectures[name]
	return arch, ok
}

// Architectures yields (name, architecture) pairs in stored order.
func (e *Entity) Architectures() iter.Seq2[string, Architecture] {
	return func(yield func(string, Architecture) bool) {
		for _, name := range e.archNames {
			if !yield(name, e.architectures[name]) {
				return
			}
		}
	}
}

// EntityBuilder assembles an Entity.
type EntityBuilder struct {
	entity *Entity
	err    error
}

// NewEntityBuilder starts building an entity named name.
func NewEntityBuilder(name string) *EntityBuilder {
	return &EntityBuilder{
		entity: &Entity{
			name:          name,
			architectures: make(map[string]Architecture),
		},
	}
}

// Generics appends generic names.
func (b *EntityBuilder) Generics(names ...string) *EntityBuilder {
	for _, n := range names {
		if b.err == nil && slices.Contains(b.entity.generics, n) {
			b.err = zerr.With(zerr.With(zerr.Wrap(ErrInvalidEntity, "duplicate generic"), "entity", b.entity.name), "generic", n)
		}
		b.entity.generics = append(b.entity.generics, n)
	}
	return b
}

// Ports appends port names.
func (b *EntityBuilder) Ports(names ...string) *EntityBuilder {
	for _, n := range names {
		if b.err == nil && slices.Contains(b.entity.ports, n) {
			b.err = zerr.With(zerr.With(zerr.Wrap(ErrInvalidEntity, "duplicate port"), "entity", b.entity.name), "port", n)
		}
		b.entity.ports = append(b.entity.ports, n)
	}
	return b
}

// Architecture appends a named architecture. Order of calls is the stored order.
func (b *EntityBuilder) Architecture(name string, arch Architecture) *EntityBuilder {
	if b.err != nil {
		return b
	}
	if arch == nil {
		b.err = zerr.With(zerr.With(zerr.Wrap(ErrInvalidEntity, "nil architecture"), "entity", b.entity.name), "architecture", name)
		return b
	}
	if _, exists := b.entity.architectures[name]; exists {
		b.err = zerr.With(zerr.With(zerr.Wrap(ErrDuplicateArchitecture, "architecture declared twice"), "entity", b.entity.name), "architecture", name)
		return b
	}
	b.entity.archNames = append(b.entity.archNames, name)
	b.entity.architectures[name] = arch
	return b
}

// Build returns the entity or the first error recorded while building it.
// The builder must not be used after Build.
func (b *EntityBuilder) Build() (*Entity, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.entity.name == "" {
		return nil, zerr.Wrap(ErrInvalidEntity, "entity name is empty")
	}
	return b.entity, nil
}
