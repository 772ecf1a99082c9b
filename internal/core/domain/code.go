package domain

import "slices"

// Dialect names understood by the simulator backends.
const (
	DialectSpice     = "spice"
	DialectNgspice   = "ngspice"
	DialectXyce      = "xyce"
	DialectVHDL      = "vhdl"
	DialectGHDL      = "ghdl"
	DialectVerilog   = "verilog"
	DialectVerilator = "verilator"
)

// CodeArch is the code for a single dialect.
type CodeArch struct {
	// Definition is emitted once per netlist.
	Definition Definition
	// Declaration is optional text a parent needs before referencing the code.
	Declaration string
	// Reference is the template rendered once per instance.
	Reference string
}

// CodeDialectTable maps dialect names to their code.
type CodeDialectTable struct {
	order []string
	code  map[string]CodeArch
}

// NewCodeDialectTable creates an empty table.
func NewCodeDialectTable() *CodeDialectTable {
	return &CodeDialectTable{
		code: make(map[string]CodeArch),
	}
}

// Set stores the code for a dialect, replacing any previous entry.
func (t *CodeDialectTable) Set(dialect string, code CodeArch) *CodeDialectTable {
	if _, exists := t.code[dialect]; !exists {
		t.order = append(t.order, dialect)
	}
	t.code[dialect] = code
	return t
}

// Lookup returns the code for a dialect.
func (t *CodeDialectTable) Lookup(dialect string) (CodeArch, bool) {
	code, ok := t.code[dialect]
	return code, ok
}

// Dialects returns the dialect names in the order they were added.
func (t *CodeDialectTable) Dialects() []string {
	return slices.Clone(t.order)
}

// Kind implements Architecture.
func (*CodeDialectTable) Kind() ArchitectureKind { return ArchitectureCode }

func (*CodeDialectTable) architecture() {}
