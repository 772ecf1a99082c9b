package ports

// TemplateData is the data a reference template is rendered with.
type TemplateData struct {
	// Name is the instance name.
	Name string
	// Generic maps generic names to their bound values.
	Generic map[string]string
	// Port maps port names to the nets they are bound to.
	Port map[string]string
}

// Templater substitutes instance data into reference templates.
//
//go:generate mockgen -source=templater.go -destination=mocks/mock_templater.go -package=mocks
type Templater interface {
	// Render renders tmpl with data. Undefined placeholders are an error.
	Render(tmpl string, data TemplateData) (string, error)
}
