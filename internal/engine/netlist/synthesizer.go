package netlist

import (
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolution records which architecture was selected for one configuration of a hierarchy.
type Resolution struct {
	Path         string
	Entity       string
	Architecture string
	Kind         domain.ArchitectureKind
}

// Synthesizer builds configuration trees for design targets.
type Synthesizer struct {
	templater ports.Templater
}

// NewSynthesizer creates a Synthesizer rendering code references with templater.
func NewSynthesizer(templater ports.Templater) *Synthesizer {
	return &Synthesizer{templater: templater}
}

// Configure returns the root configuration of target for the named simulator.
func (s *Synthesizer) Configure(design *domain.Design, target domain.Target, simulator string) (*Configuration, error) {
	if target.Entity == "" {
		return nil, zerr.Wrap(domain.ErrNoTopEntity, "cannot configure target")
	}
	sim, err := Lookup(simulator)
	if err != nil {
		return nil, err
	}
	entity, err := design.Entity(target.Entity)
	if err != nil {
		return nil, err
	}
	return New(sim, s.templater, entity,
		WithArchitecture(target.Architecture),
		WithOverrides(target.Overrides),
	), nil
}

// Synthesize renders the netlist of target for the named simulator.
func (s *Synthesizer) Synthesize(design *domain.Design, target domain.Target, simulator string) (string, error) {
	cfg, err := s.Configure(design, target, simulator)
	if err != nil {
		return "", err
	}
	return cfg.Netlist()
}

// Resolve walks the hierarchy of target and reports the architecture chosen at every level
// without rendering any text.
func (s *Synthesizer) Resolve(design *domain.Design, target domain.Target, simulator string) ([]Resolution, error) {
	cfg, err := s.Configure(design, target, simulator)
	if err != nil {
		return nil, err
	}
	var out []Resolution
	if err := s.walk(cfg, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Synthesizer) walk(cfg *Configuration, out *[]Resolution) error {
	name, arch, err := cfg.ResolveArchitecture()
	if err != nil {
		return zerr.With(err, "hierarchy", cfg.Path())
	}
	*out = append(*out, Resolution{
		Path:         cfg.Path(),
		Entity:       cfg.Entity().Name(),
		Architecture: name,
		Kind:         arch.Kind(),
	})

	switch a := arch.(type) {
	case *domain.Schematic:
		if err := cfg.checkCycle(); err != nil {
			return err
		}
		for inst := range a.Instances() {
			if _, _, err := bind(inst.Entity, inst.Name, inst.Generics, inst.Ports); err != nil {
				return zerr.With(err, "hierarchy", cfg.Path())
			}
			if err := s.walk(cfg.Child(inst.Name, inst), out); err != nil {
				return err
			}
		}
	case *domain.CodeDialectTable:
		if _, err := cfg.code(a); err != nil {
			return zerr.With(err, "hierarchy", cfg.Path())
		}
	default:
		return zerr.With(cfg.noCode(), "hierarchy", cfg.Path())
	}
	return nil
}
