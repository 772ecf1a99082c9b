package domain

// ArchitectureKind identifies which variant an Architecture holds.
type ArchitectureKind int

const (
	// ArchitectureSymbol is a graphical symbol with no code.
	ArchitectureSymbol ArchitectureKind = iota
	// ArchitectureSchematic is a structural netlist of instances.
	ArchitectureSchematic
	// ArchitectureCode is a table of per-dialect code.
	ArchitectureCode
)

func (k ArchitectureKind) String() string {
	switch k {
	case ArchitectureSymbol:
		return "symbol"
	case ArchitectureSchematic:
		return "schematic"
	case ArchitectureCode:
		return "code"
	default:
		return "unknown"
	}
}

// Architecture is one implementation view of an Entity.
// The set of implementations is closed: Symbol, *Schematic and *CodeDialectTable.
type Architecture interface {
	Kind() ArchitectureKind
	architecture()
}

// Symbol is a graphical-only architecture. It can never be synthesized.
type Symbol struct{}

// Kind implements Architecture.
func (Symbol) Kind() ArchitectureKind { return ArchitectureSymbol }

func (Symbol) architecture() {}

var (
	_ Architecture = Symbol{}
	_ Architecture = (*Schematic)(nil)
	_ Architecture = (*CodeDialectTable)(nil)
)
