package config

import (
	"slices"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"go.trai.ch/zerr"
)

// Design translates the file into a domain.Design.
// Entities may refer to entities declared later in the file. Instances are bound in a
// second pass once every entity exists, so cycles surface from Design.Validate.
func (f *DesignFile) Design() (*domain.Design, error) {
	design := domain.NewDesign()
	design.Target = domain.Target{
		Entity:       f.Target.Entity,
		Architecture: f.Target.Architecture,
		Simulators:   slices.Clone(f.Target.Simulators),
		Overrides:    f.Target.Overrides,
	}

	type pending struct {
		entity    string
		arch      string
		schematic *domain.Schematic
		instances []InstanceDTO
	}
	var schematics []pending

	for _, dto := range f.Entities {
		b := domain.NewEntityBuilder(dto.Name).Generics(dto.Generics...).Ports(dto.Ports...)
		for _, a := range dto.Architectures {
			arch, err := architecture(dto.Name, a)
			if err != nil {
				return nil, err
			}
			if sch, ok := arch.(*domain.Schematic); ok {
				schematics = append(schematics, pending{
					entity:    dto.Name,
					arch:      a.Name,
					schematic: sch,
					instances: a.Schematic.Instances,
				})
			}
			b.Architecture(a.Name, arch)
		}

		entity, err := b.Build()
		if err != nil {
			return nil, err
		}
		if err := design.AddEntity(entity); err != nil {
			return nil, err
		}
	}

	for _, p := range schematics {
		for _, inst := range p.instances {
			entity, err := design.Entity(inst.Entity)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "cannot bind instance"), "instance", inst.Name)
				return nil, zerr.With(zerr.With(err, "parent", p.entity), "architecture", p.arch)
			}
			err = p.schematic.Add(domain.Instance{
				Name:     inst.Name,
				Entity:   entity,
				Generics: inst.Generics,
				Ports:    inst.Ports,
				X:        inst.X,
				Y:        inst.Y,
			})
			if err != nil {
				return nil, zerr.With(zerr.With(err, "parent", p.entity), "architecture", p.arch)
			}
		}
	}
	return design, nil
}

func architecture(entity string, a ArchitectureDTO) (domain.Architecture, error) {
	set := 0
	for _, ok := range []bool{a.Symbol, len(a.Code) > 0, a.Schematic != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		err := zerr.Wrap(domain.ErrInvalidEntity, "architecture must set exactly one of symbol, code or schematic")
		return nil, zerr.With(zerr.With(err, "entity", entity), "architecture", a.Name)
	}

	switch {
	case a.Symbol:
		return domain.Symbol{}, nil
	case a.Schematic != nil:
		return domain.NewSchematic(a.Schematic.Toplevel), nil
	}

	table := domain.NewCodeDialectTable()
	for _, c := range a.Code {
		def, err := definition(c.Definition)
		if err != nil {
			err = zerr.With(zerr.With(err, "entity", entity), "architecture", a.Name)
			return nil, zerr.With(err, "dialect", c.Dialect)
		}
		table.Set(c.Dialect, domain.CodeArch{
			Definition:  def,
			Declaration: c.Declaration,
			Reference:   c.Reference,
		})
	}
	return table, nil
}

func definition(d DefinitionDTO) (domain.Definition, error) {
	switch {
	case d.Code != "" && d.Library == "" && !d.Primitive:
		return domain.CodeDefinition(d.Code), nil
	case d.Library != "" && d.Code == "" && !d.Primitive:
		return domain.LibraryDefinition(d.Library), nil
	case d.Code == "" && d.Library == "":
		return domain.PrimitiveDefinition(), nil
	default:
		return domain.Definition{}, zerr.Wrap(domain.ErrInvalidEntity, "definition must set at most one of code, library or primitive")
	}
}
