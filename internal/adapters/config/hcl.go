package config

import (
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"go.trai.ch/zerr"
)

func decodeHCL(path string, data []byte) (*DesignFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, parseError("hcl", diags)
	}

	var parsed hclDesignFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, parseError("hcl", diags)
	}
	return parsed.designFile()
}

func (f *hclDesignFile) designFile() (*DesignFile, error) {
	file := &DesignFile{Version: f.Version}
	if f.Target != nil {
		file.Target = TargetDTO{
			Entity:       f.Target.Entity,
			Architecture: f.Target.Architecture,
			Simulators:   f.Target.Simulators,
			Overrides:    f.Target.Overrides,
		}
	}

	for _, e := range f.Entities {
		entity := EntityDTO{Name: e.Name, Generics: e.Generics, Ports: e.Ports}
		for _, a := range e.Architectures {
			arch, err := a.architecture(e.Name)
			if err != nil {
				return nil, err
			}
			entity.Architectures = append(entity.Architectures, arch)
		}
		file.Entities = append(file.Entities, entity)
	}
	return file, nil
}

func (a *hclArchitecture) architecture(entity string) (ArchitectureDTO, error) {
	arch := ArchitectureDTO{Name: a.Name, Symbol: a.Symbol}
	for _, c := range a.Code {
		code := CodeDTO{Dialect: c.Dialect, Declaration: c.Declaration, Reference: c.Reference}
		if c.Definition != nil {
			code.Definition = DefinitionDTO(*c.Definition)
		}
		arch.Code = append(arch.Code, code)
	}
	if a.Schematic == nil {
		return arch, nil
	}

	arch.Schematic = &SchematicDTO{Toplevel: a.Schematic.Toplevel}
	for _, inst := range a.Schematic.Instances {
		generics, err := stringMap(inst.Generics)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "invalid generics"), "instance", inst.Name)
			return ArchitectureDTO{}, zerr.With(err, "entity", entity)
		}
		arch.Schematic.Instances = append(arch.Schematic.Instances, InstanceDTO{
			Name:     inst.Name,
			Entity:   inst.Entity,
			Generics: generics,
			Ports:    inst.Ports,
			X:        inst.X,
			Y:        inst.Y,
		})
	}
	return arch, nil
}

// stringMap converts an HCL object of scalars into generic values.
func stringMap(v *cty.Value) (map[string]string, error) {
	if v == nil || v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "generics must be an object"), "type", v.Type().FriendlyName())
	}

	out := make(map[string]string)
	for it := v.ElementIterator(); it.Next(); {
		key, val := it.Element()
		str, err := convert.Convert(val, cty.String)
		if err != nil || str.IsNull() || !str.IsKnown() {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "generic value is not a string or number"), "generic", key.AsString())
		}
		out[key.AsString()] = str.AsString()
	}
	return out, nil
}
