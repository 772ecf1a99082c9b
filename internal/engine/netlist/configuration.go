// Package netlist synthesizes simulator netlists from hierarchical circuit designs.
package netlist

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ Code = (*Configuration)(nil)

// Option configures a Configuration.
type Option func(*Configuration)

// WithArchitecture selects the architecture by name, ignoring overrides.
func WithArchitecture(name string) Option {
	return func(c *Configuration) {
		c.arch = name
	}
}

// WithOverrides sets the entity name to architecture name overrides applied throughout the hierarchy.
func WithOverrides(overrides map[string]string) Option {
	return func(c *Configuration) {
		c.overrides = maps.Clone(overrides)
	}
}

// Configuration binds an entity to a simulator and resolves which architecture is used.
// Child configurations are created once per instance name and reused afterwards.
type Configuration struct {
	sim       Simulator
	templater ports.Templater
	entity    *domain.Entity
	arch      string
	overrides map[string]string

	parent   *Configuration
	instance string

	resolveOnce  sync.Once
	resolvedName string
	resolved     domain.Architecture
	resolveErr   error

	mu       sync.Mutex
	children map[string]*Configuration
}

// New creates the root configuration of entity for sim.
func New(sim Simulator, templater ports.Templater, entity *domain.Entity, opts ...Option) *Configuration {
	c := &Configuration{
		sim:       sim,
		templater: templater,
		entity:    entity,
		overrides: map[string]string{},
		children:  make(map[string]*Configuration),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.overrides == nil {
		c.overrides = map[string]string{}
	}
	return c
}

// Entity returns the configured entity.
func (c *Configuration) Entity() *domain.Entity {
	return c.entity
}

// Simulator returns the target simulator.
func (c *Configuration) Simulator() Simulator {
	return c.sim
}

// Path returns the instance path from the root configuration, e.g. "tb/buf/inv1".
func (c *Configuration) Path() string {
	var parts []string
	for cur := c; cur != nil; cur = cur.parent {
		if cur.parent == nil {
			parts = append(parts, cur.entity.Name())
		} else {
			parts = append(parts, cur.instance)
		}
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}

// ResolveArchitecture selects the architecture for this configuration.
// An explicit name wins over an override for the entity, which wins over the first
// architecture in stored order the simulator can use. The result is computed once.
func (c *Configuration) ResolveArchitecture() (string, domain.Architecture, error) {
	c.resolveOnce.Do(func() {
		c.resolvedName, c.resolved, c.resolveErr = c.resolve()
	})
	return c.resolvedName, c.resolved, c.resolveErr
}

func (c *Configuration) resolve() (string, domain.Architecture, error) {
	if c.arch != "" {
		return c.named(c.arch)
	}
	if name, ok := c.overrides[c.entity.Name()]; ok {
		return c.named(name)
	}
	for name, arch := range c.entity.Architectures() {
		switch a := arch.(type) {
		case *domain.Schematic:
			return name, a, nil
		case *domain.CodeDialectTable:
			if _, ok := c.sim.Dialect(a); ok {
				return name, a, nil
			}
		}
	}
	err := zerr.With(zerr.Wrap(domain.ErrDialect, "no architecture usable by simulator"), "entity", c.entity.Name())
	return "", nil, zerr.With(err, "simulator", c.sim.Name())
}

func (c *Configuration) named(name string) (string, domain.Architecture, error) {
	arch, ok := c.entity.Architecture(name)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrArchitectureNotFound, "cannot select architecture"), "entity", c.entity.Name())
		return "", nil, zerr.With(err, "architecture", name)
	}
	return name, arch, nil
}

// Child returns the configuration of the instance called name, creating it on first use.
// Later calls with the same name return the same configuration regardless of inst.
func (c *Configuration) Child(name string, inst *domain.Instance) *Configuration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if child, ok := c.children[name]; ok {
		return child
	}
	child := &Configuration{
		sim:       c.sim,
		templater: c.templater,
		entity:    inst.Entity,
		overrides: maps.Clone(c.overrides),
		parent:    c,
		instance:  name,
		children:  make(map[string]*Configuration),
	}
	c.children[name] = child
	return child
}

// Definitions returns the definitions this configuration contributes to a netlist, in dependency order.
func (c *Configuration) Definitions() (*domain.DefinitionSet, error) {
	_, arch, err := c.ResolveArchitecture()
	if err != nil {
		return nil, err
	}
	switch a := arch.(type) {
	case *domain.Schematic:
		if err := c.checkCycle(); err != nil {
			return nil, err
		}
		return c.sim.SynthesizeDefinition(c, a)
	case *domain.CodeDialectTable:
		code, err := c.code(a)
		if err != nil {
			return nil, err
		}
		return code.Definitions()
	default:
		return nil, c.noCode()
	}
}

// Declaration returns the declaration text of code architectures.
func (c *Configuration) Declaration() (string, bool) {
	_, arch, err := c.ResolveArchitecture()
	if err != nil {
		return "", false
	}
	table, ok := arch.(*domain.CodeDialectTable)
	if !ok {
		return "", false
	}
	code, err := c.code(table)
	if err != nil {
		return "", false
	}
	return code.Declaration()
}

// Reference renders one instantiation of the configured entity.
// Every declared port and generic must be bound, whatever the architecture.
func (c *Configuration) Reference(name string, generics, ports map[string]string) (string, error) {
	_, arch, err := c.ResolveArchitecture()
	if err != nil {
		return "", err
	}
	if _, _, err := bind(c.entity, name, generics, ports); err != nil {
		return "", zerr.With(err, "hierarchy", c.Path())
	}

	var ref string
	switch a := arch.(type) {
	case *domain.Schematic:
		ref, err = c.sim.SynthesizeReference(c, name, generics, ports)
	case *domain.CodeDialectTable:
		var code Code
		code, err = c.code(a)
		if err == nil {
			ref, err = code.Reference(name, generics, ports)
		}
	default:
		err = c.noCode()
	}
	if err != nil {
		return "", zerr.With(err, "hierarchy", c.Path())
	}
	return ref, nil
}

// Netlist renders the full netlist text of the configuration.
func (c *Configuration) Netlist() (string, error) {
	defs, err := c.Definitions()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for d := range defs.All() {
		text, err := c.sim.RenderDefinition(d)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func (c *Configuration) code(table *domain.CodeDialectTable) (Code, error) {
	code, ok := c.sim.Dialect(table)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrDialect, "no code for simulator"), "entity", c.entity.Name())
		return nil, zerr.With(err, "simulator", c.sim.Name())
	}
	return newTemplateCode(code, c.templater), nil
}

func (c *Configuration) noCode() error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrNoCode, "symbol cannot be synthesized"), "entity", c.entity.Name()), "architecture", c.resolvedName)
}

// checkCycle fails when the entity already appears among the ancestors of this configuration.
func (c *Configuration) checkCycle() error {
	chain := []string{c.entity.Name()}
	for p := c.parent; p != nil; p = p.parent {
		chain = append(chain, p.entity.Name())
		if p.entity.Name() == c.entity.Name() {
			slices.Reverse(chain)
			err := zerr.With(zerr.Wrap(domain.ErrCycleDetected, "entity instantiates itself"), "cycle", strings.Join(chain, " -> "))
			return zerr.With(err, "hierarchy", c.Path())
		}
	}
	return nil
}

// templateError joins the kind sentinel with the templater's own error.
func templateError(err error, name string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrTemplate, err), "failed to render reference"), "instance", name)
}
