package templater_test

import (
	"sync"
	"testing"

	"github.com/NyanCAD/amscrcuits/internal/adapters/templater"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplater_Render(t *testing.T) {
	data := ports.TemplateData{
		Name:    "p1",
		Generic: map[string]string{"w": "1u", "l": "180n"},
		Port:    map[string]string{"g": "in", "d": "out", "s": "vdd", "b": "vdd"},
	}

	tests := []struct {
		name    string
		tmpl    string
		want    string
		wantErr bool
	}{
		{
			name: "mosfet line",
			tmpl: "m{{.name}} {{.port.d}} {{.port.g}} {{.port.s}} {{.port.b}} PMOS W={{.generic.w}} L={{.generic.l}}",
			want: "mp1 out in vdd vdd PMOS W=1u L=180n",
		},
		{
			name: "plain text",
			tmpl: "no placeholders",
			want: "no placeholders",
		},
		{
			name:    "unbound port",
			tmpl:    "{{.port.missing}}",
			wantErr: true,
		},
		{
			name:    "unknown field",
			tmpl:    "{{.instance}}",
			wantErr: true,
		},
		{
			name:    "malformed",
			tmpl:    "{{.name",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templater.New().Render(tt.tmpl, data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplater_NilMaps(t *testing.T) {
	got, err := templater.New().Render("v{{.name}}", ports.TemplateData{Name: "dd"})
	require.NoError(t, err)
	assert.Equal(t, "vdd", got)

	_, err = templater.New().Render("{{.generic.dc}}", ports.TemplateData{Name: "dd"})
	require.Error(t, err)
}

func TestTemplater_ConcurrentRender(t *testing.T) {
	tp := templater.New()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := tp.Render("x{{.name}}", ports.TemplateData{Name: string(rune('a' + i))})
			assert.NoError(t, err)
			assert.Equal(t, "x"+string(rune('a'+i)), out)
		}()
	}
	wg.Wait()
}
