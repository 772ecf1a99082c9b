package netlist_test

import (
	"errors"
	"testing"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// chainMetadata merges the metadata of every zerr error in the chain, outermost first.
func chainMetadata(err error) map[string]any {
	meta := map[string]any{}
	for ; err != nil; err = errors.Unwrap(err) {
		zErr, ok := err.(*zerr.Error)
		if !ok {
			continue
		}
		for k, v := range zErr.Metadata() {
			if _, ok := meta[k]; !ok {
				meta[k] = v
			}
		}
	}
	return meta
}

func mosfet(t *testing.T, name, model string) *domain.Entity {
	t.Helper()
	code := domain.NewCodeDialectTable().Set(domain.DialectSpice, domain.CodeArch{
		Definition: domain.CodeDefinition(".model " + model + " " + model),
		Reference:  "m{{.name}} {{.port.d}} {{.port.g}} {{.port.s}} {{.port.b}} " + model + " W={{.generic.w}} L={{.generic.l}}",
	})
	e, err := domain.NewEntityBuilder(name).
		Generics("w", "l").
		Ports("g", "d", "s", "b").
		Architecture("rtl", code).
		Build()
	require.NoError(t, err)
	return e
}

func voltage(t *testing.T) *domain.Entity {
	t.Helper()
	code := domain.NewCodeDialectTable().Set(domain.DialectSpice, domain.CodeArch{
		Definition: domain.PrimitiveDefinition(),
		Reference:  "v{{.name}} {{.port.p}} {{.port.n}} {{.generic.dc}} {{.generic.tran}}",
	})
	e, err := domain.NewEntityBuilder("voltage").
		Generics("dc", "tran").
		Ports("p", "n").
		Architecture("rtl", code).
		Build()
	require.NoError(t, err)
	return e
}

// testbench builds the inverter/buffer circuit driven by two voltage sources.
func testbench(t *testing.T) *domain.Design {
	t.Helper()
	pmos := mosfet(t, "pmos", "PMOS")
	nmos := mosfet(t, "nmos", "NMOS")
	vsrc := voltage(t)

	invSch := domain.NewSchematic(false)
	require.NoError(t, invSch.Add(domain.Instance{
		Name:     "pmos",
		Entity:   pmos,
		Generics: map[string]string{"w": "1u", "l": "1u"},
		Ports:    map[string]string{"g": "in", "d": "out", "s": "vdd", "b": "vdd"},
	}))
	require.NoError(t, invSch.Add(domain.Instance{
		Name:     "nmos",
		Entity:   nmos,
		Generics: map[string]string{"l": "1u", "w": "1u"},
		Ports:    map[string]string{"b": "gnd", "s": "gnd", "d": "out", "g": "in"},
	}))
	inverter, err := domain.NewEntityBuilder("inverter").
		Ports("vdd", "gnd", "in", "out").
		Architecture("default", invSch).
		Build()
	require.NoError(t, err)

	bufSch := domain.NewSchematic(false)
	require.NoError(t, bufSch.Add(domain.Instance{
		Name:   "inv1",
		Entity: inverter,
		Ports:  map[string]string{"vdd": "vdd", "gnd": "gnd", "in": "in", "out": "mid"},
	}))
	require.NoError(t, bufSch.Add(domain.Instance{
		Name:   "inv2",
		Entity: inverter,
		Ports:  map[string]string{"vdd": "vdd", "gnd": "gnd", "in": "mid", "out": "out"},
		X:      40,
	}))
	buffer, err := domain.NewEntityBuilder("buffer").
		Ports("vdd", "gnd", "in", "out").
		Architecture("default", bufSch).
		Build()
	require.NoError(t, err)

	tbSch := domain.NewSchematic(true)
	require.NoError(t, tbSch.Add(domain.Instance{
		Name:   "buf",
		Entity: buffer,
		Ports:  map[string]string{"vdd": "vdd", "gnd": "gnd", "in": "in", "out": "out"},
	}))
	require.NoError(t, tbSch.Add(domain.Instance{
		Name:     "input",
		Entity:   vsrc,
		Generics: map[string]string{"dc": "0", "tran": "sin(2.5 2.5 1k)"},
		Ports:    map[string]string{"p": "in", "n": "gnd"},
	}))
	require.NoError(t, tbSch.Add(domain.Instance{
		Name:     "supply",
		Entity:   vsrc,
		Generics: map[string]string{"dc": "5", "tran": "sin(5 0 1k)"},
		Ports:    map[string]string{"p": "vdd", "n": "gnd"},
	}))
	tb, err := domain.NewEntityBuilder("tb").
		Architecture("default", tbSch).
		Build()
	require.NoError(t, err)

	d := domain.NewDesign()
	for _, e := range []*domain.Entity{pmos, nmos, vsrc, inverter, buffer, tb} {
		require.NoError(t, d.AddEntity(e))
	}
	d.Target = domain.Target{Entity: "tb", Architecture: "default"}
	return d
}

const invVHDL = `library ieee;
use ieee.std_logic_1164.all;

entity inv_cell is
  port (a : in std_logic; y : out std_logic);
end entity inv_cell;

architecture rtl of inv_cell is
begin
  y <= not a;
end architecture rtl;`

// digitalChain builds two inverter cells in series under a toplevel.
func digitalChain(t *testing.T) *domain.Design {
	t.Helper()
	code := domain.NewCodeDialectTable().
		Set(domain.DialectVerilog, domain.CodeArch{
			Definition: domain.CodeDefinition("module inv_cell(input a, output y); assign y = ~a; endmodule"),
			Reference:  "inv_cell {{.name}} (.a({{.port.a}}), .y({{.port.y}}));",
		}).
		Set(domain.DialectVHDL, domain.CodeArch{
			Definition:  domain.CodeDefinition(invVHDL),
			Declaration: "component inv_cell is port (a : in std_logic; y : out std_logic); end component;",
			Reference:   "{{.name}}: inv_cell port map (a => {{.port.a}}, y => {{.port.y}});",
		})
	inv, err := domain.NewEntityBuilder("inv").Ports("a", "y").Architecture("rtl", code).Build()
	require.NoError(t, err)

	chainSch := domain.NewSchematic(false)
	require.NoError(t, chainSch.Add(domain.Instance{Name: "i1", Entity: inv, Ports: map[string]string{"a": "a", "y": "m"}}))
	require.NoError(t, chainSch.Add(domain.Instance{Name: "i2", Entity: inv, Ports: map[string]string{"a": "m", "y": "y"}}))
	chain, err := domain.NewEntityBuilder("chain").Ports("a", "y").Architecture("default", chainSch).Build()
	require.NoError(t, err)

	topSch := domain.NewSchematic(true)
	require.NoError(t, topSch.Add(domain.Instance{Name: "c", Entity: chain, Ports: map[string]string{"a": "x", "y": "z"}}))
	top, err := domain.NewEntityBuilder("top").Architecture("default", topSch).Build()
	require.NoError(t, err)

	d := domain.NewDesign()
	for _, e := range []*domain.Entity{inv, chain, top} {
		require.NoError(t, d.AddEntity(e))
	}
	d.Target = domain.Target{Entity: "top"}
	return d
}
