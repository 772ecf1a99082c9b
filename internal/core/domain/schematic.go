package domain

import (
	"iter"
	"maps"

	"go.trai.ch/zerr"
)

// Instance is one use of an entity inside a schematic.
type Instance struct {
	Name     string
	Entity   *Entity
	Generics map[string]string
	Ports    map[string]string
	// X and Y are the placement on the schematic canvas. Synthesis ignores them.
	X, Y int
}

// Schematic is a structural architecture made of named instances.
type Schematic struct {
	toplevel  bool
	instances []*Instance
	index     map[string]*Instance
}

// NewSchematic creates an empty schematic. A toplevel schematic is the root of a testbench.
func NewSchematic(toplevel bool) *Schematic {
	return &Schematic{
		toplevel: toplevel,
		index:    make(map[string]*Instance),
	}
}

// Toplevel reports whether the schematic is a testbench root.
func (s *Schematic) Toplevel() bool {
	return s.toplevel
}

// Add appends an instance. Binding maps are copied.
func (s *Schematic) Add(inst Instance) error {
	if inst.Entity == nil {
		return zerr.With(zerr.Wrap(ErrEntityNotFound, "instance has no entity"), "instance", inst.Name)
	}
	if _, exists := s.index[inst.Name]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateInstance, "instance name already used"), "instance", inst.Name)
	}
	inst.Generics = maps.Clone(inst.Generics)
	inst.Ports = maps.Clone(inst.Ports)
	if inst.Generics == nil {
		inst.Generics = map[string]string{}
	}
	if inst.Ports == nil {
		inst.Ports = map[string]string{}
	}
	s.instances = append(s.instances, &inst)
	s.index[inst.Name] = &inst
	return nil
}

// Instance returns the instance named name.
func (s *Schematic) Instance(name string) (*Instance, bool) {
	inst, ok := s.index[name]
	return inst, ok
}

// Instances yields the instances in insertion order.
func (s *Schematic) Instances() iter.Seq[*Instance] {
	return func(yield func(*Instance) bool) {
		for _, inst := range s.instances {
			if !yield(inst) {
				return
			}
		}
	}
}

// Len returns the number of instances.
func (s *Schematic) Len() int {
	return len(s.instances)
}

// Kind implements Architecture.
func (*Schematic) Kind() ArchitectureKind { return ArchitectureSchematic }

func (*Schematic) architecture() {}
