package config

import "github.com/zclconf/go-cty/cty"

// DesignFile is the decoded form of a design file, shared by the YAML and TOML decoders.
type DesignFile struct {
	Version  string      `yaml:"version" toml:"version"`
	Target   TargetDTO   `yaml:"target" toml:"target"`
	Entities []EntityDTO `yaml:"entities" toml:"entities"`
}

// TargetDTO names the default synthesis target of the design.
type TargetDTO struct {
	Entity       string            `yaml:"entity" toml:"entity"`
	Architecture string            `yaml:"architecture" toml:"architecture"`
	Simulators   []string          `yaml:"simulators" toml:"simulators"`
	Overrides    map[string]string `yaml:"overrides" toml:"overrides"`
}

// EntityDTO represents an entity definition.
type EntityDTO struct {
	Name          string            `yaml:"name" toml:"name"`
	Generics      []string          `yaml:"generics" toml:"generics"`
	Ports         []string          `yaml:"ports" toml:"ports"`
	Architectures []ArchitectureDTO `yaml:"architectures" toml:"architectures"`
}

// ArchitectureDTO sets exactly one of Symbol, Code or Schematic.
type ArchitectureDTO struct {
	Name      string        `yaml:"name" toml:"name"`
	Symbol    bool          `yaml:"symbol" toml:"symbol"`
	Code      []CodeDTO     `yaml:"code" toml:"code"`
	Schematic *SchematicDTO `yaml:"schematic" toml:"schematic"`
}

// CodeDTO is the code of one dialect.
type CodeDTO struct {
	Dialect     string        `yaml:"dialect" toml:"dialect"`
	Definition  DefinitionDTO `yaml:"definition" toml:"definition"`
	Declaration string        `yaml:"declaration" toml:"declaration"`
	Reference   string        `yaml:"reference" toml:"reference"`
}

// DefinitionDTO sets at most one of Code, Library or Primitive. An empty definition is a primitive.
type DefinitionDTO struct {
	Code      string `yaml:"code" toml:"code"`
	Library   string `yaml:"library" toml:"library"`
	Primitive bool   `yaml:"primitive" toml:"primitive"`
}

// SchematicDTO lists the instances of a schematic architecture.
type SchematicDTO struct {
	Toplevel  bool          `yaml:"toplevel" toml:"toplevel"`
	Instances []InstanceDTO `yaml:"instances" toml:"instances"`
}

// InstanceDTO binds an entity into a schematic.
type InstanceDTO struct {
	Name     string            `yaml:"name" toml:"name"`
	Entity   string            `yaml:"entity" toml:"entity"`
	Generics map[string]string `yaml:"generics" toml:"generics"`
	Ports    map[string]string `yaml:"ports" toml:"ports"`
	X        int               `yaml:"x" toml:"x"`
	Y        int               `yaml:"y" toml:"y"`
}

// HCL design files use labelled blocks instead of lists of named objects.

type hclDesignFile struct {
	Version  string       `hcl:"version,optional"`
	Target   *hclTarget   `hcl:"target,block"`
	Entities []*hclEntity `hcl:"entity,block"`
}

type hclTarget struct {
	Entity       string            `hcl:"entity,optional"`
	Architecture string            `hcl:"architecture,optional"`
	Simulators   []string          `hcl:"simulators,optional"`
	Overrides    map[string]string `hcl:"overrides,optional"`
}

type hclEntity struct {
	Name          string             `hcl:"name,label"`
	Generics      []string           `hcl:"generics,optional"`
	Ports         []string           `hcl:"ports,optional"`
	Architectures []*hclArchitecture `hcl:"architecture,block"`
}

type hclArchitecture struct {
	Name      string        `hcl:"name,label"`
	Symbol    bool          `hcl:"symbol,optional"`
	Code      []*hclCode    `hcl:"code,block"`
	Schematic *hclSchematic `hcl:"schematic,block"`
}

type hclCode struct {
	Dialect     string         `hcl:"dialect,label"`
	Definition  *hclDefinition `hcl:"definition,block"`
	Declaration string         `hcl:"declaration,optional"`
	Reference   string         `hcl:"reference,optional"`
}

type hclDefinition struct {
	Code      string `hcl:"code,optional"`
	Library   string `hcl:"library,optional"`
	Primitive bool   `hcl:"primitive,optional"`
}

type hclSchematic struct {
	Toplevel  bool           `hcl:"toplevel,optional"`
	Instances []*hclInstance `hcl:"instance,block"`
}

type hclInstance struct {
	Name   string `hcl:"name,label"`
	Entity string `hcl:"entity"`
	// Generics accepts numbers as well as strings, e.g. { W = 1e-6 }.
	Generics *cty.Value        `hcl:"generics,optional"`
	Ports    map[string]string `hcl:"ports,optional"`
	X        int               `hcl:"x,optional"`
	Y        int               `hcl:"y,optional"`
}
