package netlist

import (
	"strings"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
)

// spice renders SPICE decks: subcircuits for blocks and a complete deck for toplevels.
type spice struct{}

func (s spice) definition(cfg *Configuration, sch *domain.Schematic, children []child, defs *domain.DefinitionSet) (*domain.DefinitionSet, error) {
	e := cfg.Entity()
	if !sch.Toplevel() {
		lines := make([]string, 0, len(children)+2)
		lines = append(lines, strings.Join(append([]string{".subckt", e.Name()}, e.Ports()...), " "))
		for _, ch := range children {
			lines = append(lines, ch.ref)
		}
		lines = append(lines, ".ends "+e.Name())
		defs.Add(domain.CodeDefinition(strings.Join(lines, "\n")))
		return defs, nil
	}

	var b strings.Builder
	b.WriteString("* " + e.Name() + "\n")
	for d := range defs.All() {
		text, err := cfg.Simulator().RenderDefinition(d)
		if err != nil {
			return nil, err
		}
		writeLine(&b, text)
	}
	for _, ch := range children {
		writeLine(&b, ch.ref)
	}
	b.WriteString(".end\n")
	return domain.NewDefinitionSet(domain.CodeDefinition(b.String())), nil
}

func (spice) reference(e *domain.Entity, name string, generics, ports map[string]string) (string, error) {
	nets, params, err := bind(e, name, generics, ports)
	if err != nil {
		return "", err
	}
	fields := make([]string, 0, len(nets)+len(params)+2)
	fields = append(fields, "x"+name)
	for _, n := range nets {
		fields = append(fields, n.value)
	}
	fields = append(fields, e.Name())
	for _, p := range params {
		fields = append(fields, p.key+"="+p.value)
	}
	return strings.Join(fields, " "), nil
}

func (spice) library(path string) string {
	return ".include " + path
}

// writeLine writes text followed by a newline. Empty text writes nothing.
func writeLine(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
}
