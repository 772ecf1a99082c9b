// Package templater renders reference templates with text/template.
package templater

import (
	"strings"
	"sync"
	"text/template"

	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Templater = (*Templater)(nil)

// Templater implements ports.Templater.
// Templates see the instance as {{.name}}, {{.generic.w}} and {{.port.d}}.
// Referencing a key that is not bound is an error.
type Templater struct {
	mu    sync.RWMutex
	cache map[string]*template.Template
}

// New creates a Templater.
func New() *Templater {
	return &Templater{
		cache: make(map[string]*template.Template),
	}
}

// Render renders tmpl with data.
func (t *Templater) Render(tmpl string, data ports.TemplateData) (string, error) {
	parsed, err := t.parse(tmpl)
	if err != nil {
		return "", err
	}

	generic := data.Generic
	if generic == nil {
		generic = map[string]string{}
	}
	port := data.Port
	if port == nil {
		port = map[string]string{}
	}

	var b strings.Builder
	if err := parsed.Execute(&b, map[string]any{
		"name":    data.Name,
		"generic": generic,
		"port":    port,
	}); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to execute template"), "template", tmpl)
	}
	return b.String(), nil
}

func (t *Templater) parse(tmpl string) (*template.Template, error) {
	t.mu.RLock()
	parsed, ok := t.cache[tmpl]
	t.mu.RUnlock()
	if ok {
		return parsed, nil
	}

	parsed, err := template.New("reference").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse template"), "template", tmpl)
	}

	t.mu.Lock()
	t.cache[tmpl] = parsed
	t.mu.Unlock()
	return parsed, nil
}
