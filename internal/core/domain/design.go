// Package domain contains the circuit model: entities, their architectures and the designs that group them.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Target names what to synthesize from a design.
type Target struct {
	Entity       string
	Architecture string
	Simulators   []string
	// Overrides maps entity names to the architecture to use wherever that entity appears.
	Overrides map[string]string
}

// Design is a registry of entities by unique name.
type Design struct {
	entities map[string]*Entity
	order    []string
	Target   Target
}

// NewDesign creates an empty Design.
func NewDesign() *Design {
	return &Design{
		entities: make(map[string]*Entity),
	}
}

// AddEntity adds an entity to the design.
// It returns an error if an entity with the same name already exists.
func (d *Design) AddEntity(e *Entity) error {
	if _, exists := d.entities[e.Name()]; exists {
		return zerr.With(zerr.Wrap(ErrEntityAlreadyExists, "cannot add entity"), "entity", e.Name())
	}
	d.entities[e.Name()] = e
	d.order = append(d.order, e.Name())
	return nil
}

// Entity returns the entity named name.
func (d *Design) Entity(name string) (*Entity, error) {
	e, ok := d.entities[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrEntityNotFound, "unknown entity"), "entity", name)
	}
	return e, nil
}

// Entities yields the entities in the order they were added.
func (d *Design) Entities() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, name := range d.order {
			if !yield(d.entities[name]) {
				return
			}
		}
	}
}

// Validate checks every schematic in the design.
// Instances must refer to entities of this design, bind only declared keys, and
// no entity may instantiate itself through its own hierarchy.
func (d *Design) Validate() error {
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(e *Entity) error
	visit = func(e *Entity) error {
		visited[e.Name()] = 1
		path = append(path, e.Name())

		for archName, arch := range e.Architectures() {
			sch, ok := arch.(*Schematic)
			if !ok {
				continue
			}
			for inst := range sch.Instances() {
				if err := d.checkInstance(e, archName, inst); err != nil {
					return err
				}
				child := inst.Entity.Name()
				if visited[child] == 1 {
					return buildCycleError(path, child)
				}
				if visited[child] == 0 {
					if err := visit(inst.Entity); err != nil {
						return err
					}
				}
			}
		}

		visited[e.Name()] = 2
		path = path[:len(path)-1]
		return nil
	}

	for e := range d.Entities() {
		if visited[e.Name()] == 0 {
			if err := visit(e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Design) checkInstance(parent *Entity, archName string, inst *Instance) error {
	if _, ok := d.entities[inst.Entity.Name()]; !ok {
		err := zerr.With(zerr.Wrap(ErrEntityNotFound, "instance refers to an entity outside the design"), "entity", inst.Entity.Name())
		return zerr.With(err, "instance", parent.Name()+"/"+archName+"/"+inst.Name)
	}
	for _, key := range slices.Sorted(maps.Keys(inst.Generics)) {
		if !inst.Entity.HasGeneric(key) {
			return bindingError("generic", key, parent, inst)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(inst.Ports)) {
		if !inst.Entity.HasPort(key) {
			return bindingError("port", key, parent, inst)
		}
	}
	return nil
}

func bindingError(kind, key string, parent *Entity, inst *Instance) error {
	err := zerr.With(zerr.Wrap(ErrUnknownBinding, "instance binds an undeclared "+kind), kind, key)
	err = zerr.With(err, "instance", inst.Name)
	err = zerr.With(err, "entity", inst.Entity.Name())
	return zerr.With(err, "parent", parent.Name())
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(zerr.Wrap(ErrCycleDetected, "entity instantiates itself"), "cycle", strings.Join(cycle, " -> "))
}
