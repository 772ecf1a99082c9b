package netlist

import (
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
)

// Code is what a circuit block exposes to the schematic that instantiates it.
type Code interface {
	// Definitions returns the definitions the block needs, in dependency order.
	Definitions() (*domain.DefinitionSet, error)
	// Declaration returns optional text a parent emits before referencing the block.
	Declaration() (string, bool)
	// Reference renders one instantiation of the block.
	Reference(name string, generics, ports map[string]string) (string, error)
}

// templateCode is code stored as text with a reference template.
type templateCode struct {
	code      domain.CodeArch
	templater ports.Templater
}

func newTemplateCode(code domain.CodeArch, templater ports.Templater) *templateCode {
	return &templateCode{code: code, templater: templater}
}

func (t *templateCode) Definitions() (*domain.DefinitionSet, error) {
	return domain.NewDefinitionSet(t.code.Definition), nil
}

func (t *templateCode) Declaration() (string, bool) {
	return t.code.Declaration, t.code.Declaration != ""
}

func (t *templateCode) Reference(name string, generics, ports map[string]string) (string, error) {
	out, err := t.templater.Render(t.code.Reference, templateData(name, generics, ports))
	if err != nil {
		return "", templateError(err, name)
	}
	return out, nil
}

func templateData(name string, generics, bindings map[string]string) ports.TemplateData {
	return ports.TemplateData{
		Name:    name,
		Generic: generics,
		Port:    bindings,
	}
}
