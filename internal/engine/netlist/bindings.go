package netlist

import (
	"slices"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"go.trai.ch/zerr"
)

// child is one synthesized instance of a schematic.
type child struct {
	inst        *domain.Instance
	cfg         *Configuration
	ref         string
	declaration string
}

// collect visits the instances of sch in order. For each it merges the child's
// definitions and renders its reference line. The first error aborts the walk.
func collect(cfg *Configuration, sch *domain.Schematic) (*domain.DefinitionSet, []child, error) {
	defs := domain.NewDefinitionSet()
	children := make([]child, 0, sch.Len())
	for inst := range sch.Instances() {
		cc := cfg.Child(inst.Name, inst)

		d, err := cc.Definitions()
		if err != nil {
			return nil, nil, err
		}
		defs.Extend(d)

		ref, err := cc.Reference(inst.Name, inst.Generics, inst.Ports)
		if err != nil {
			return nil, nil, err
		}
		decl, _ := cc.Declaration()
		children = append(children, child{inst: inst, cfg: cc, ref: ref, declaration: decl})
	}
	return defs, children, nil
}

// binding is a key and its bound value.
type binding struct {
	key, value string
}

// bind returns the port nets and generic values of an instance in the entity's declared order.
func bind(e *domain.Entity, name string, generics, ports map[string]string) (nets, params []binding, err error) {
	for _, p := range e.Ports() {
		net, ok := ports[p]
		if !ok {
			return nil, nil, missing(domain.ErrMissingPort, "port", p, name, e)
		}
		nets = append(nets, binding{key: p, value: net})
	}
	for _, g := range e.Generics() {
		v, ok := generics[g]
		if !ok {
			return nil, nil, missing(domain.ErrMissingGeneric, "generic", g, name, e)
		}
		params = append(params, binding{key: g, value: v})
	}
	return nets, params, nil
}

func missing(sentinel error, kind, key, instance string, e *domain.Entity) error {
	err := zerr.With(zerr.Wrap(sentinel, "instance does not bind "+kind+" "+key), kind, key)
	err = zerr.With(err, "instance", instance)
	return zerr.With(err, "entity", e.Name())
}

// internalNets returns the nets used by children that are not ports of the enclosing entity,
// in order of first use.
func internalNets(e *domain.Entity, children []child, toplevel bool) []string {
	var exclude []string
	if !toplevel {
		exclude = e.Ports()
	}
	var nets []string
	for _, ch := range children {
		for _, p := range ch.inst.Entity.Ports() {
			net, ok := ch.inst.Ports[p]
			if !ok || slices.Contains(exclude, net) || slices.Contains(nets, net) {
				continue
			}
			nets = append(nets, net)
		}
	}
	return nets
}

// declarations returns the distinct child declarations in order of first use.
func declarations(children []child) []string {
	var out []string
	for _, ch := range children {
		if ch.declaration != "" && !slices.Contains(out, ch.declaration) {
			out = append(out, ch.declaration)
		}
	}
	return out
}
