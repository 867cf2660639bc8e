package chip

import (
	"embed"
	"errors"
	"io/fs"
	"strings"

	"github.com/goliatone/go-feconfig/pkg/render/template"
	"github.com/goliatone/go-feconfig/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplateName is the template the FE document is rendered from.
const TemplateName = "chip"

// Document is the rendered FE format text.
type Document []byte

func (d Document) String() string {
	return string(d)
}

// TemplatesFS exposes the embedded template bundle so callers can copy
// chip.tpl as the starting point for an override.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewRenderer returns a template renderer over the embedded templates. A
// non-empty overrideDir is searched first, so a chip.tpl placed there
// replaces the built-in layout.
func NewRenderer(overrideDir string) (template.TemplateRenderer, error) {
	options := []gotemplate.Option{gotemplate.WithFS(TemplatesFS())}
	if dir := strings.TrimSpace(overrideDir); dir != "" {
		options = append(options, gotemplate.WithBaseDir(dir))
	}
	return gotemplate.New(options...)
}

// Render renders cfg into the FE document.
func Render(renderer template.TemplateRenderer, cfg Config) (Document, error) {
	if renderer == nil {
		return nil, errors.New("chip: template renderer is nil")
	}
	out, err := renderer.RenderTemplate(TemplateName, cfg.Fields())
	if err != nil {
		return nil, err
	}
	return Document(out), nil
}

// Generate converts values and renders the document in one step. Nothing is
// rendered when conversion fails.
func Generate(renderer template.TemplateRenderer, values Values) (Document, error) {
	cfg, err := Convert(values)
	if err != nil {
		return nil, err
	}
	return Render(renderer, cfg)
}
