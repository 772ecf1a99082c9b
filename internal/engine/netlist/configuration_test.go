package netlist_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/NyanCAD/amscrcuits/internal/adapters/templater"
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/NyanCAD/amscrcuits/internal/core/ports/mocks"
	"github.com/NyanCAD/amscrcuits/internal/engine/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// multiArch has a symbol, two SPICE code architectures and one Verilog code architecture, in that order.
func multiArch(t *testing.T) *domain.Entity {
	t.Helper()
	spiceCode := func(ref string) *domain.CodeDialectTable {
		return domain.NewCodeDialectTable().Set(domain.DialectSpice, domain.CodeArch{
			Definition: domain.PrimitiveDefinition(),
			Reference:  ref,
		})
	}
	e, err := domain.NewEntityBuilder("ent").
		Ports("p").
		Architecture("sym", domain.Symbol{}).
		Architecture("a", spiceCode("A")).
		Architecture("b", spiceCode("B")).
		Architecture("c", domain.NewCodeDialectTable().Set(domain.DialectVerilog, domain.CodeArch{Reference: "C"})).
		Build()
	require.NoError(t, err)
	return e
}

func TestConfiguration_ResolveArchitecture(t *testing.T) {
	tests := []struct {
		name     string
		sim      netlist.Simulator
		opts     []netlist.Option
		wantArch string
		wantErr  error
	}{
		{
			name:     "first supported in stored order",
			sim:      netlist.Ngspice,
			wantArch: "a",
		},
		{
			name:     "first supported skips unusable code",
			sim:      netlist.Verilator,
			wantArch: "c",
		},
		{
			name:     "override beats stored order",
			sim:      netlist.Ngspice,
			opts:     []netlist.Option{netlist.WithOverrides(map[string]string{"ent": "b"})},
			wantArch: "b",
		},
		{
			name:     "override for another entity is ignored",
			sim:      netlist.Ngspice,
			opts:     []netlist.Option{netlist.WithOverrides(map[string]string{"other": "b"})},
			wantArch: "a",
		},
		{
			name: "explicit beats override",
			sim:  netlist.Ngspice,
			opts: []netlist.Option{
				netlist.WithArchitecture("sym"),
				netlist.WithOverrides(map[string]string{"ent": "b"}),
			},
			wantArch: "sym",
		},
		{
			name:    "explicit name missing",
			sim:     netlist.Ngspice,
			opts:    []netlist.Option{netlist.WithArchitecture("zzz")},
			wantErr: domain.ErrArchitectureNotFound,
		},
		{
			name:    "override name missing",
			sim:     netlist.Ngspice,
			opts:    []netlist.Option{netlist.WithOverrides(map[string]string{"ent": "zzz"})},
			wantErr: domain.ErrArchitectureNotFound,
		},
		{
			name:    "nothing usable",
			sim:     netlist.GHDL,
			wantErr: domain.ErrDialect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := netlist.New(tt.sim, templater.New(), multiArch(t), tt.opts...)
			name, arch, err := cfg.ResolveArchitecture()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrDialect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArch, name)
			want, _ := cfg.Entity().Architecture(tt.wantArch)
			assert.Equal(t, want, arch)
		})
	}
}

func TestConfiguration_ResolveArchitectureOnce(t *testing.T) {
	cfg := netlist.New(netlist.Ngspice, templater.New(), multiArch(t))

	var wg sync.WaitGroup
	names := make([]string, 32)
	for i := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names[i], _, _ = cfg.ResolveArchitecture()
		}()
	}
	wg.Wait()

	for _, n := range names {
		assert.Equal(t, "a", n)
	}
}

func TestConfiguration_ChildMemoized(t *testing.T) {
	d := testbench(t)
	tb, err := d.Entity("tb")
	require.NoError(t, err)
	buffer, err := d.Entity("buffer")
	require.NoError(t, err)

	cfg := netlist.New(netlist.Ngspice, templater.New(), tb, netlist.WithOverrides(map[string]string{"pmos": "rtl"}))
	inst := &domain.Instance{Name: "buf", Entity: buffer}

	first := cfg.Child("buf", inst)
	assert.Same(t, first, cfg.Child("buf", inst))
	assert.Same(t, first, cfg.Child("buf", &domain.Instance{Name: "buf", Entity: tb}), "the first binding wins")
	assert.Equal(t, "buffer", first.Entity().Name())
	assert.Equal(t, "tb/buf", first.Path())

	_, err = cfg.Netlist()
	require.NoError(t, err)
	assert.Same(t, first, cfg.Child("buf", inst), "synthesis reuses the memoized child")
	assert.Equal(t, 3, cfg.ChildCount())
	assert.Equal(t, 2, first.ChildCount())

	name, _, err := first.ResolveArchitecture()
	require.NoError(t, err)
	assert.Equal(t, "default", name)
}

func TestConfiguration_ChildInheritsOverridesNotArchitecture(t *testing.T) {
	d := testbench(t)
	tb, err := d.Entity("tb")
	require.NoError(t, err)
	buffer, err := d.Entity("buffer")
	require.NoError(t, err)

	cfg := netlist.New(netlist.Ngspice, templater.New(), tb,
		netlist.WithArchitecture("default"),
		netlist.WithOverrides(map[string]string{"buffer": "missing"}),
	)
	_, _, err = cfg.ResolveArchitecture()
	require.NoError(t, err)

	_, _, err = cfg.Child("buf", &domain.Instance{Name: "buf", Entity: buffer}).ResolveArchitecture()
	assert.ErrorIs(t, err, domain.ErrArchitectureNotFound)
}

func TestConfiguration_Reference_DeclaredOrder(t *testing.T) {
	d := testbench(t)
	buffer, err := d.Entity("buffer")
	require.NoError(t, err)

	cfg := netlist.New(netlist.Ngspice, templater.New(), buffer)

	portMaps := []map[string]string{
		{"vdd": "a", "gnd": "b", "in": "c", "out": "d"},
		{"out": "d", "in": "c", "gnd": "b", "vdd": "a"},
		{"in": "c", "vdd": "a", "out": "d", "gnd": "b"},
	}
	for _, ports := range portMaps {
		ref, err := cfg.Reference("u1", nil, ports)
		require.NoError(t, err)
		assert.Equal(t, "xu1 a b c d buffer", ref)
	}
}

func TestConfiguration_Reference_Generics(t *testing.T) {
	sch := domain.NewSchematic(false)
	amp, err := domain.NewEntityBuilder("amp").
		Generics("gain", "bw").
		Ports("in", "out").
		Architecture("default", sch).
		Build()
	require.NoError(t, err)

	tests := []struct {
		name     string
		sim      netlist.Simulator
		generics map[string]string
		ports    map[string]string
		want     string
		wantErr  error
		wantMeta map[string]any
	}{
		{
			name:     "spice",
			sim:      netlist.Ngspice,
			generics: map[string]string{"bw": "1meg", "gain": "10"},
			ports:    map[string]string{"out": "o", "in": "i"},
			want:     "xa1 i o amp gain=10 bw=1meg",
		},
		{
			name:     "verilog",
			sim:      netlist.Verilator,
			generics: map[string]string{"bw": "1meg", "gain": "10"},
			ports:    map[string]string{"out": "o", "in": "i"},
			want:     `amp #(.gain("10"), .bw("1meg")) a1 (.in(i), .out(o));`,
		},
		{
			name:     "vhdl",
			sim:      netlist.GHDL,
			generics: map[string]string{"bw": "1meg", "gain": "10"},
			ports:    map[string]string{"out": "o", "in": "i"},
			want:     `a1: entity work.amp generic map (gain => "10", bw => "1meg") port map (in => i, out => o);`,
		},
		{
			name:     "missing port",
			sim:      netlist.Ngspice,
			generics: map[string]string{"bw": "1meg", "gain": "10"},
			ports:    map[string]string{"in": "i"},
			wantErr:  domain.ErrMissingPort,
			wantMeta: map[string]any{"port": "out", "instance": "a1", "entity": "amp"},
		},
		{
			name:     "missing generic",
			sim:      netlist.Xyce,
			generics: map[string]string{"gain": "10"},
			ports:    map[string]string{"out": "o", "in": "i"},
			wantErr:  domain.ErrMissingGeneric,
			wantMeta: map[string]any{"generic": "bw", "instance": "a1", "entity": "amp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := netlist.New(tt.sim, templater.New(), amp)
			ref, err := cfg.Reference("a1", tt.generics, tt.ports)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrCompile)
				var zErr *zerr.Error
				require.ErrorAs(t, err, &zErr)
				for k, v := range tt.wantMeta {
					assert.Equal(t, v, zErr.Metadata()[k], "metadata %q", k)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestConfiguration_MissingBindingInsideHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		instance string
		unbind   func(inst *domain.Instance)
		wantErr  error
		wantMeta map[string]string
	}{
		{
			name:     "port used by the template",
			instance: "input",
			unbind:   func(inst *domain.Instance) { delete(inst.Ports, "n") },
			wantErr:  domain.ErrMissingPort,
			wantMeta: map[string]string{"port": "n", "instance": "input", "entity": "voltage", "hierarchy": "tb/input"},
		},
		{
			name:     "generic used by the template",
			instance: "supply",
			unbind:   func(inst *domain.Instance) { delete(inst.Generics, "tran") },
			wantErr:  domain.ErrMissingGeneric,
			wantMeta: map[string]string{"generic": "tran", "instance": "supply", "entity": "voltage"},
		},
		{
			name:     "port of a subcircuit instance",
			instance: "buf",
			unbind:   func(inst *domain.Instance) { delete(inst.Ports, "out") },
			wantErr:  domain.ErrMissingPort,
			wantMeta: map[string]string{"port": "out", "instance": "buf", "entity": "buffer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testbench(t)
			tb, err := d.Entity("tb")
			require.NoError(t, err)
			sch, _ := tb.Architecture("default")
			inst, ok := sch.(*domain.Schematic).Instance(tt.instance)
			require.True(t, ok)
			tt.unbind(inst)

			_, err = netlist.New(netlist.Ngspice, templater.New(), tb).Netlist()

			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrCompile)
			assert.NotErrorIs(t, err, domain.ErrTemplate)
			meta := chainMetadata(err)
			for k, v := range tt.wantMeta {
				assert.Equal(t, v, meta[k], "metadata %q", k)
			}
		})
	}
}

// A declared key the reference template never mentions must still be bound.
func TestConfiguration_MissingBindingUnusedByTemplate(t *testing.T) {
	code := domain.NewCodeDialectTable().Set(domain.DialectSpice, domain.CodeArch{
		Definition: domain.PrimitiveDefinition(),
		Reference:  "v{{.name}} {{.port.p}} {{.port.n}} {{.generic.dc}}",
	})
	vsrc, err := domain.NewEntityBuilder("voltage").
		Generics("dc", "tran").
		Ports("p", "n").
		Architecture("rtl", code).
		Build()
	require.NoError(t, err)

	sch := domain.NewSchematic(true)
	require.NoError(t, sch.Add(domain.Instance{
		Name:     "supply",
		Entity:   vsrc,
		Generics: map[string]string{"dc": "5"},
		Ports:    map[string]string{"p": "vdd", "n": "gnd"},
	}))
	top, err := domain.NewEntityBuilder("top").Architecture("default", sch).Build()
	require.NoError(t, err)

	out, err := netlist.New(netlist.Ngspice, templater.New(), top).Netlist()

	assert.Empty(t, out)
	require.ErrorIs(t, err, domain.ErrMissingGeneric)
	assert.ErrorIs(t, err, domain.ErrCompile)
	meta := chainMetadata(err)
	assert.Equal(t, "tran", meta["generic"])
	assert.Equal(t, "supply", meta["instance"])
}

func TestConfiguration_TemplateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpl := mocks.NewMockTemplater(ctrl)

	cause := errors.New("map has no entry for key \"d\"")
	tmpl.EXPECT().
		Render("m{{.name}}", ports.TemplateData{Name: "m1", Generic: map[string]string{}, Port: map[string]string{"g": "x", "d": "y"}}).
		Return("", cause).
		Times(1)

	code := domain.NewCodeDialectTable().Set(domain.DialectNgspice, domain.CodeArch{Reference: "m{{.name}}"})
	e, err := domain.NewEntityBuilder("fet").Ports("g", "d").Architecture("rtl", code).Build()
	require.NoError(t, err)

	_, err = netlist.New(netlist.Ngspice, tmpl, e).Reference("m1", map[string]string{}, map[string]string{"g": "x", "d": "y"})
	require.ErrorIs(t, err, domain.ErrTemplate)
	assert.ErrorIs(t, err, cause)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "m1", zErr.Metadata()["instance"])
	assert.Equal(t, "fet", zErr.Metadata()["hierarchy"])
}

func TestConfiguration_CodeUsesPreferredDialect(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpl := mocks.NewMockTemplater(ctrl)
	tmpl.EXPECT().Render("specific", gomock.Any()).Return("ngspice line", nil)

	code := domain.NewCodeDialectTable().
		Set(domain.DialectSpice, domain.CodeArch{Definition: domain.CodeDefinition("generic"), Reference: "generic"}).
		Set(domain.DialectNgspice, domain.CodeArch{Definition: domain.CodeDefinition("specific"), Reference: "specific"})
	e, err := domain.NewEntityBuilder("r").Architecture("rtl", code).Build()
	require.NoError(t, err)

	cfg := netlist.New(netlist.Ngspice, tmpl, e)
	ref, err := cfg.Reference("r1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ngspice line", ref)

	defs, err := cfg.Definitions()
	require.NoError(t, err)
	assert.Equal(t, []domain.Definition{domain.CodeDefinition("specific")}, defs.Slice())

	xyce, err := netlist.New(netlist.Xyce, tmpl, e).Definitions()
	require.NoError(t, err)
	assert.Equal(t, []domain.Definition{domain.CodeDefinition("generic")}, xyce.Slice())
}

func TestConfiguration_Declaration(t *testing.T) {
	code := domain.NewCodeDialectTable().
		Set(domain.DialectVHDL, domain.CodeArch{Declaration: "component x end component;", Reference: "r"}).
		Set(domain.DialectSpice, domain.CodeArch{Reference: "r"})
	e, err := domain.NewEntityBuilder("x").Architecture("rtl", code).Build()
	require.NoError(t, err)

	decl, ok := netlist.New(netlist.GHDL, templater.New(), e).Declaration()
	assert.True(t, ok)
	assert.Equal(t, "component x end component;", decl)

	_, ok = netlist.New(netlist.Ngspice, templater.New(), e).Declaration()
	assert.False(t, ok)

	_, ok = netlist.New(netlist.Verilator, templater.New(), e).Declaration()
	assert.False(t, ok)
}

func TestConfiguration_SymbolHasNoCode(t *testing.T) {
	cfg := netlist.New(netlist.Ngspice, templater.New(), multiArch(t), netlist.WithArchitecture("sym"))

	_, err := cfg.Definitions()
	require.ErrorIs(t, err, domain.ErrNoCode)
	assert.ErrorIs(t, err, domain.ErrDialect)

	_, err = cfg.Reference("s1", nil, map[string]string{"p": "n"})
	assert.ErrorIs(t, err, domain.ErrNoCode)
}

func TestConfiguration_ExplicitCodeWithoutDialect(t *testing.T) {
	cfg := netlist.New(netlist.Ngspice, templater.New(), multiArch(t), netlist.WithArchitecture("c"))

	_, err := cfg.Definitions()
	require.ErrorIs(t, err, domain.ErrDialect)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "ngspice", zErr.Metadata()["simulator"])
}
