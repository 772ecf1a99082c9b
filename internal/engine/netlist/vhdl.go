package netlist

import (
	"strings"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
)

const vhdlContext = "library ieee;\nuse ieee.std_logic_1164.all;\n"

// vhdl renders structural VHDL entity/architecture pairs.
type vhdl struct{}

func (h vhdl) definition(cfg *Configuration, sch *domain.Schematic, children []child, defs *domain.DefinitionSet) (*domain.DefinitionSet, error) {
	e := cfg.Entity()
	var b strings.Builder

	if sch.Toplevel() {
		b.WriteString("-- " + e.Name() + "\n")
		for d := range defs.All() {
			text, err := cfg.Simulator().RenderDefinition(d)
			if err != nil {
				return nil, err
			}
			writeLine(&b, text)
		}
		b.WriteString(vhdlContext + "\n")
		b.WriteString("entity " + e.Name() + " is\nend entity " + e.Name() + ";\n")
	} else {
		b.WriteString(vhdlContext + "\n")
		b.WriteString(h.entity(e))
	}

	b.WriteString("\narchitecture synthesized of " + e.Name() + " is\n")
	for _, net := range internalNets(e, children, sch.Toplevel()) {
		b.WriteString("  signal " + net + " : std_logic;\n")
	}
	for _, decl := range declarations(children) {
		for line := range strings.Lines(decl) {
			b.WriteString("  " + strings.TrimRight(line, "\n") + "\n")
		}
	}
	b.WriteString("begin\n")
	for _, ch := range children {
		b.WriteString("  " + ch.ref + "\n")
	}
	b.WriteString("end architecture synthesized;")

	if sch.Toplevel() {
		b.WriteByte('\n')
		return domain.NewDefinitionSet(domain.CodeDefinition(b.String())), nil
	}
	defs.Add(domain.CodeDefinition(b.String()))
	return defs, nil
}

func (vhdl) entity(e *domain.Entity) string {
	var b strings.Builder
	b.WriteString("entity " + e.Name() + " is\n")
	if generics := e.Generics(); len(generics) > 0 {
		decls := make([]string, len(generics))
		for i, g := range generics {
			decls[i] = g + " : string"
		}
		b.WriteString("  generic (" + strings.Join(decls, "; ") + ");\n")
	}
	if ports := e.Ports(); len(ports) > 0 {
		decls := make([]string, len(ports))
		for i, p := range ports {
			decls[i] = p + " : inout std_logic"
		}
		b.WriteString("  port (" + strings.Join(decls, "; ") + ");\n")
	}
	b.WriteString("end entity " + e.Name() + ";\n")
	return b.String()
}

func (vhdl) reference(e *domain.Entity, name string, generics, ports map[string]string) (string, error) {
	nets, params, err := bind(e, name, generics, ports)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(name + ": entity work." + e.Name())
	if len(params) > 0 {
		assoc := make([]string, len(params))
		for i, p := range params {
			assoc[i] = p.key + " => " + vhdlString(p.value)
		}
		b.WriteString(" generic map (" + strings.Join(assoc, ", ") + ")")
	}
	if len(nets) > 0 {
		assoc := make([]string, len(nets))
		for i, n := range nets {
			assoc[i] = n.key + " => " + n.value
		}
		b.WriteString(" port map (" + strings.Join(assoc, ", ") + ")")
	}
	b.WriteString(";")
	return b.String(), nil
}

func (vhdl) library(path string) string {
	return "-- library: " + path
}

// vhdlString renders v as a VHDL string literal, doubling embedded quotes.
func vhdlString(v string) string {
	return "\"" + strings.ReplaceAll(v, "\"", "\"\"") + "\""
}
