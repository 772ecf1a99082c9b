package netlist

import (
	"slices"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"go.trai.ch/zerr"
)

// Family is a group of simulators sharing one netlist language.
type Family int

const (
	// FamilySpice emits SPICE decks.
	FamilySpice Family = iota
	// FamilyVerilog emits structural Verilog.
	FamilyVerilog
	// FamilyVHDL emits structural VHDL.
	FamilyVHDL
)

func (f Family) String() string {
	switch f {
	case FamilySpice:
		return "spice"
	case FamilyVerilog:
		return "verilog"
	case FamilyVHDL:
		return "vhdl"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used for netlists of the family.
func (f Family) Extension() string {
	switch f {
	case FamilyVerilog:
		return ".v"
	case FamilyVHDL:
		return ".vhd"
	default:
		return ".cir"
	}
}

// Simulator is a target backend. The set of simulators is fixed.
type Simulator interface {
	// Name returns the simulator name, e.g. "ngspice".
	Name() string
	// Family returns the netlist language family.
	Family() Family
	// Dialects returns the preference chain, most specific dialect first.
	Dialects() []string
	// Dialect returns the first code in table matching the simulator's preference chain.
	Dialect(table *domain.CodeDialectTable) (domain.CodeArch, bool)
	// SynthesizeDefinition renders the definitions of a schematic architecture.
	SynthesizeDefinition(cfg *Configuration, sch *domain.Schematic) (*domain.DefinitionSet, error)
	// SynthesizeReference renders one instantiation of the configuration's entity.
	SynthesizeReference(cfg *Configuration, name string, generics, ports map[string]string) (string, error)
	// RenderDefinition renders a definition as netlist text. Primitives render as nothing.
	RenderDefinition(d domain.Definition) (string, error)
}

// syntax holds the textual conventions of one family.
type syntax interface {
	definition(cfg *Configuration, sch *domain.Schematic, children []child, defs *domain.DefinitionSet) (*domain.DefinitionSet, error)
	reference(entity *domain.Entity, name string, generics, ports map[string]string) (string, error)
	library(path string) string
}

type backend struct {
	name     string
	family   Family
	dialects []string
	syntax   syntax
}

// Supported simulators.
var (
	Ngspice   Simulator = &backend{name: "ngspice", family: FamilySpice, dialects: []string{domain.DialectNgspice, domain.DialectSpice}, syntax: spice{}}
	Xyce      Simulator = &backend{name: "xyce", family: FamilySpice, dialects: []string{domain.DialectXyce, domain.DialectSpice}, syntax: spice{}}
	GHDL      Simulator = &backend{name: "ghdl", family: FamilyVHDL, dialects: []string{domain.DialectGHDL, domain.DialectVHDL}, syntax: vhdl{}}
	Verilator Simulator = &backend{name: "verilator", family: FamilyVerilog, dialects: []string{domain.DialectVerilator, domain.DialectVerilog}, syntax: verilog{}}
)

var simulators = []Simulator{Ngspice, Xyce, GHDL, Verilator}

// Simulators returns every supported simulator.
func Simulators() []Simulator {
	out := make([]Simulator, len(simulators))
	copy(out, simulators)
	return out
}

// Lookup returns the simulator with the given name.
func Lookup(name string) (Simulator, error) {
	for _, sim := range simulators {
		if sim.Name() == name {
			return sim, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSimulator, "no such simulator"), "simulator", name)
}

func (b *backend) Name() string   { return b.name }
func (b *backend) Family() Family { return b.family }

func (b *backend) Dialects() []string { return slices.Clone(b.dialects) }

// Dialect walks the preference chain, most specific dialect first.
func (b *backend) Dialect(table *domain.CodeDialectTable) (domain.CodeArch, bool) {
	for _, d := range b.dialects {
		if code, ok := table.Lookup(d); ok {
			return code, true
		}
	}
	return domain.CodeArch{}, false
}

func (b *backend) SynthesizeDefinition(cfg *Configuration, sch *domain.Schematic) (*domain.DefinitionSet, error) {
	defs, children, err := collect(cfg, sch)
	if err != nil {
		return nil, err
	}
	return b.syntax.definition(cfg, sch, children, defs)
}

func (b *backend) SynthesizeReference(cfg *Configuration, name string, generics, ports map[string]string) (string, error) {
	return b.syntax.reference(cfg.Entity(), name, generics, ports)
}

func (b *backend) RenderDefinition(d domain.Definition) (string, error) {
	switch d.Kind {
	case domain.DefinitionLibrary:
		path, err := d.LibraryPath()
		if err != nil {
			return "", err
		}
		return b.syntax.library(path), nil
	case domain.DefinitionPrimitive:
		return "", nil
	default:
		return d.Text, nil
	}
}
