package domain

import "go.trai.ch/zerr"

// Error kinds. Every synthesis failure matches exactly one of these through errors.Is.
var (
	// ErrDialect is returned when no architecture or code dialect is usable by the requested simulator.
	ErrDialect = zerr.New("dialect error")

	// ErrCompile is returned when a design cannot be rendered into a netlist.
	ErrCompile = zerr.New("compile error")

	// ErrTemplate is returned when a reference template fails to render.
	ErrTemplate = zerr.New("template error")
)

// Dialect errors.
var (
	// ErrArchitectureNotFound is returned when an explicitly named architecture does not exist on the entity.
	ErrArchitectureNotFound = zerr.Wrap(ErrDialect, "architecture not found")

	// ErrNoCode is returned when a symbol-only architecture is asked for code.
	ErrNoCode = zerr.Wrap(ErrDialect, "architecture has no code")
)

// Compile errors.
var (
	// ErrMissingPort is returned when an instance does not bind a declared port.
	ErrMissingPort = zerr.Wrap(ErrCompile, "missing port binding")

	// ErrMissingGeneric is returned when an instance does not bind a declared generic.
	ErrMissingGeneric = zerr.Wrap(ErrCompile, "missing generic binding")

	// ErrUnrepresentablePath is returned when a library path cannot be written into a netlist.
	ErrUnrepresentablePath = zerr.Wrap(ErrCompile, "library path is not representable")

	// ErrCycleDetected is returned when an entity instantiates itself through its own hierarchy.
	ErrCycleDetected = zerr.Wrap(ErrCompile, "cycle detected")

	// ErrUnknownBinding is returned when an instance binds a key its entity does not declare.
	ErrUnknownBinding = zerr.Wrap(ErrCompile, "unknown binding")
)

// Model errors.
var (
	// ErrInvalidEntity is returned when an entity definition is malformed.
	ErrInvalidEntity = zerr.New("invalid entity")

	// ErrDuplicateArchitecture is returned when an entity declares the same architecture name twice.
	ErrDuplicateArchitecture = zerr.New("duplicate architecture")

	// ErrDuplicateInstance is returned when a schematic already contains an instance with the same name.
	ErrDuplicateInstance = zerr.New("duplicate instance")

	// ErrEntityAlreadyExists is returned when attempting to add an entity with a name that already exists.
	ErrEntityAlreadyExists = zerr.New("entity already exists")

	// ErrEntityNotFound is returned when a requested entity is not found in the design.
	ErrEntityNotFound = zerr.New("entity not found")

	// ErrUnknownSimulator is returned when a simulator name is not supported.
	ErrUnknownSimulator = zerr.New("unknown simulator")

	// ErrNoTopEntity is returned when neither the command line nor the design file names a top entity.
	ErrNoTopEntity = zerr.New("no top entity specified")
)

// Adapter errors.
var (
	// ErrConfigReadFailed is returned when the design file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read design file")

	// ErrConfigParseFailed is returned when the design file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse design file")

	// ErrUnsupportedFormat is returned when the design file extension is not recognised.
	ErrUnsupportedFormat = zerr.New("unsupported design file format")

	// ErrStoreReadFailed is returned when a cached netlist cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read netlist cache")

	// ErrStoreUnmarshalFailed is returned when a cached netlist cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal netlist record")

	// ErrStoreMarshalFailed is returned when a netlist record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal netlist record")

	// ErrStoreWriteFailed is returned when a netlist record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write netlist cache")

	// ErrStoreChecksumMismatch is returned when a cached netlist does not match its checksum.
	ErrStoreChecksumMismatch = zerr.New("netlist cache checksum mismatch")

	// ErrNetlistWriteFailed is returned when a netlist cannot be written to the output directory.
	ErrNetlistWriteFailed = zerr.New("failed to write netlist")
)
