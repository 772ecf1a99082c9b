package netlist

import (
	"strconv"
	"strings"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
)

// verilog renders structural Verilog modules.
type verilog struct{}

func (v verilog) definition(cfg *Configuration, sch *domain.Schematic, children []child, defs *domain.DefinitionSet) (*domain.DefinitionSet, error) {
	e := cfg.Entity()
	var b strings.Builder

	if sch.Toplevel() {
		b.WriteString("// " + e.Name() + "\n")
		for d := range defs.All() {
			text, err := cfg.Simulator().RenderDefinition(d)
			if err != nil {
				return nil, err
			}
			writeLine(&b, text)
		}
		b.WriteString("module " + e.Name() + ";\n")
	} else {
		b.WriteString(v.header(e))
	}

	for _, net := range internalNets(e, children, sch.Toplevel()) {
		b.WriteString("  wire " + net + ";\n")
	}
	for _, ch := range children {
		b.WriteString("  " + ch.ref + "\n")
	}
	b.WriteString("endmodule")

	if sch.Toplevel() {
		b.WriteByte('\n')
		return domain.NewDefinitionSet(domain.CodeDefinition(b.String())), nil
	}
	defs.Add(domain.CodeDefinition(b.String()))
	return defs, nil
}

func (verilog) header(e *domain.Entity) string {
	var b strings.Builder
	b.WriteString("module " + e.Name())
	if generics := e.Generics(); len(generics) > 0 {
		params := make([]string, len(generics))
		for i, g := range generics {
			params[i] = "parameter " + g + ` = ""`
		}
		b.WriteString(" #(" + strings.Join(params, ", ") + ")")
	}
	if ports := e.Ports(); len(ports) > 0 {
		decls := make([]string, len(ports))
		for i, p := range ports {
			decls[i] = "inout " + p
		}
		b.WriteString(" (" + strings.Join(decls, ", ") + ")")
	}
	b.WriteString(";\n")
	return b.String()
}

func (verilog) reference(e *domain.Entity, name string, generics, ports map[string]string) (string, error) {
	nets, params, err := bind(e, name, generics, ports)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(e.Name())
	if len(params) > 0 {
		assoc := make([]string, len(params))
		for i, p := range params {
			assoc[i] = "." + p.key + "(" + strconv.Quote(p.value) + ")"
		}
		b.WriteString(" #(" + strings.Join(assoc, ", ") + ")")
	}
	assoc := make([]string, len(nets))
	for i, n := range nets {
		assoc[i] = "." + n.key + "(" + n.value + ")"
	}
	b.WriteString(" " + name + " (" + strings.Join(assoc, ", ") + ");")
	return b.String(), nil
}

func (verilog) library(path string) string {
	return "`include " + strconv.Quote(path)
}
