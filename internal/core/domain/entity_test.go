package domain_test

import (
	"testing"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityBuilder_Build(t *testing.T) {
	code := domain.NewCodeDialectTable().Set(domain.DialectSpice, domain.CodeArch{Reference: "r{{.name}}"})
	sch := domain.NewSchematic(false)

	e, err := domain.NewEntityBuilder("res").
		Generics("r").
		Ports("p", "n").
		Architecture("sym", domain.Symbol{}).
		Architecture("rtl", code).
		Architecture("sch", sch).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "res", e.Name())
	assert.Equal(t, []string{"r"}, e.Generics())
	assert.Equal(t, []string{"p", "n"}, e.Ports())
	assert.True(t, e.HasPort("n"))
	assert.False(t, e.HasGeneric("w"))

	var names []string
	var kinds []domain.ArchitectureKind
	for name, arch := range e.Architectures() {
		names = append(names, name)
		kinds = append(kinds, arch.Kind())
	}
	assert.Equal(t, []string{"sym", "rtl", "sch"}, names)
	assert.Equal(t, []domain.ArchitectureKind{domain.ArchitectureSymbol, domain.ArchitectureCode, domain.ArchitectureSchematic}, kinds)

	arch, ok := e.Architecture("rtl")
	require.True(t, ok)
	assert.Same(t, code, arch)

	_, ok = e.Architecture("missing")
	assert.False(t, ok)
}

func TestEntity_AccessorsReturnCopies(t *testing.T) {
	e, err := domain.NewEntityBuilder("res").Ports("p", "n").Build()
	require.NoError(t, err)

	ports := e.Ports()
	ports[0] = "changed"
	assert.Equal(t, []string{"p", "n"}, e.Ports())
}

func TestEntityBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *domain.EntityBuilder
		wantErr error
	}{
		{
			name:    "empty name",
			builder: domain.NewEntityBuilder(""),
			wantErr: domain.ErrInvalidEntity,
		},
		{
			name:    "duplicate port",
			builder: domain.NewEntityBuilder("x").Ports("a", "a"),
			wantErr: domain.ErrInvalidEntity,
		},
		{
			name:    "duplicate generic",
			builder: domain.NewEntityBuilder("x").Generics("w", "w"),
			wantErr: domain.ErrInvalidEntity,
		},
		{
			name:    "duplicate architecture",
			builder: domain.NewEntityBuilder("x").Architecture("a", domain.Symbol{}).Architecture("a", domain.Symbol{}),
			wantErr: domain.ErrDuplicateArchitecture,
		},
		{
			name:    "nil architecture",
			builder: domain.NewEntityBuilder("x").Architecture("a", nil),
			wantErr: domain.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSchematic_Add(t *testing.T) {
	res, err := domain.NewEntityBuilder("res").Ports("p", "n").Build()
	require.NoError(t, err)

	sch := domain.NewSchematic(true)
	assert.True(t, sch.Toplevel())

	ports := map[string]string{"p": "in", "n": "out"}
	require.NoError(t, sch.Add(domain.Instance{Name: "r2", Entity: res, Ports: ports}))
	require.NoError(t, sch.Add(domain.Instance{Name: "r1", Entity: res}))

	ports["p"] = "mutated"
	got, ok := sch.Instance("r2")
	require.True(t, ok)
	assert.Equal(t, "in", got.Ports["p"], "bindings are copied on add")
	assert.NotNil(t, got.Generics)

	err = sch.Add(domain.Instance{Name: "r1", Entity: res})
	assert.ErrorIs(t, err, domain.ErrDuplicateInstance)

	err = sch.Add(domain.Instance{Name: "r3"})
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)

	var names []string
	for inst := range sch.Instances() {
		names = append(names, inst.Name)
	}
	assert.Equal(t, []string{"r2", "r1"}, names)
	assert.Equal(t, 2, sch.Len())
}

func TestCodeDialectTable(t *testing.T) {
	table := domain.NewCodeDialectTable().
		Set(domain.DialectSpice, domain.CodeArch{Reference: "a"}).
		Set(domain.DialectVerilog, domain.CodeArch{Reference: "b"}).
		Set(domain.DialectSpice, domain.CodeArch{Reference: "c"})

	assert.Equal(t, []string{domain.DialectSpice, domain.DialectVerilog}, table.Dialects())

	code, ok := table.Lookup(domain.DialectSpice)
	require.True(t, ok)
	assert.Equal(t, "c", code.Reference)

	_, ok = table.Lookup(domain.DialectVHDL)
	assert.False(t, ok)
}
