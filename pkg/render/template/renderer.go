package template

// TemplateRenderer is the seam document producers rely on: it renders a named
// template against a flat context.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
}
