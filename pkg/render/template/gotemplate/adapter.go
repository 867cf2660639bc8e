package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-feconfig/pkg/render/template"
)

// Extension is appended to template names that do not carry it.
const Extension = ".tpl"

// Option configures the adapter before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
}

// WithBaseDir loads templates from a directory on disk. When combined with
// WithFS the directory is searched first, so it can override individual
// embedded templates.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// Engine satisfies template.TemplateRenderer using a pongo2 template set.
type Engine struct {
	mu sync.Mutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	registerDefaultFilters()
	return &Engine{
		templateSet: pongo2.NewSet("feconfig", loaders...),
		templates:   make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate renders a named template, appending Extension when missing.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	templatePath := name
	if !strings.HasSuffix(templatePath, Extension) {
		templatePath += Extension
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(toContext(data), &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", templatePath, err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

// toContext copies data into a pongo2 context. Values pass through untouched,
// so *big.Int reaches the filters at full precision and prints in decimal.
func toContext(data map[string]any) pongo2.Context {
	out := make(pongo2.Context, len(data))
	for key, value := range data {
		if key = strings.TrimSpace(key); key != "" {
			out[key] = value
		}
	}
	return out
}

func registerDefaultFilters() {
	filters := map[string]pongo2.FilterFunction{
		"trim":      filterTrim,
		"hex":       filterHex,
		"hexdigits": filterHexDigits,
	}
	for name, fn := range filters {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterHex renders an integer as 0x-prefixed lowercase hexadecimal. The sign
// goes in front of the prefix.
func filterHex(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	n, err := toBig(in, "filter:hex")
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 {
		return pongo2.AsValue("-0x" + new(big.Int).Neg(n).Text(16)), nil
	}
	return pongo2.AsValue("0x" + n.Text(16)), nil
}

// filterHexDigits renders the signed lowercase hex digits without a prefix,
// so -1 becomes "-1".
func filterHexDigits(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	n, err := toBig(in, "filter:hexdigits")
	if err != nil {
		return nil, err
	}
	return pongo2.AsValue(n.Text(16)), nil
}

// toBig reads *big.Int, native integers and decimal strings.
func toBig(in *pongo2.Value, sender string) (*big.Int, *pongo2.Error) {
	if n, ok := in.Interface().(*big.Int); ok && n != nil {
		return n, nil
	}
	switch {
	case in.IsInteger():
		return big.NewInt(int64(in.Integer())), nil
	case in.IsString():
		n, ok := new(big.Int).SetString(strings.TrimSpace(in.String()), 10)
		if !ok {
			return nil, &pongo2.Error{
				Sender:    sender,
				OrigError: fmt.Errorf("%q is not a decimal integer", in.String()),
			}
		}
		return n, nil
	}
	return nil, &pongo2.Error{
		Sender:    sender,
		OrigError: fmt.Errorf("unsupported value %v", in.Interface()),
	}
}
