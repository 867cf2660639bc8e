package template_test

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-feconfig/pkg/render/template/gotemplate"
)

func templatesFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl":    {Data: []byte("Hello {{ name }}")},
		"raw.tpl":      {Data: []byte("{% autoescape off %}{{ name }}{% endautoescape %}")},
		"sizes.tpl":    {Data: []byte("{{ block|hex }} {{ count|hex }} {{ text|hex }} {{ label|trim }}")},
		"signed.tpl":   {Data: []byte("{{ n|hex }} 0x{{ n|hexdigits }}")},
		"plain.tpl":    {Data: []byte("{{ n }}")},
		"badhex.tpl":   {Data: []byte("{{ name|hex }}")},
		"fallback.tpl": {Data: []byte("embedded")},
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	options = append([]gotemplate.Option{gotemplate.WithFS(templatesFS())}, options...)
	engine, err := gotemplate.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func render(t *testing.T, engine *gotemplate.Engine, name string, data map[string]any) string {
	t.Helper()
	result, err := engine.RenderTemplate(name, data)
	if err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return result
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	if got := render(t, engine, "hello", map[string]any{"name": "Ada"}); got != "Hello Ada" {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", "Hello Ada", got)
	}
	if got := render(t, engine, "hello.tpl", map[string]any{" name ": "Ada"}); got != "Hello Ada" {
		t.Fatalf("expected extension and trimmed keys to resolve, got %q", got)
	}
}

func TestGoTemplateEngine_HexFilters(t *testing.T) {
	engine := newEngine(t)

	got := render(t, engine, "sizes", map[string]any{
		"block": big.NewInt(2048),
		"count": 4095,
		"text":  "1024",
		"label": "  64 GB ",
	})
	if got != "0x800 0xfff 0x400 64 GB" {
		t.Fatalf("filters mismatch: %q", got)
	}

	if got := render(t, engine, "signed", map[string]any{"n": big.NewInt(-1)}); got != "-0x1 0x-1" {
		t.Fatalf("signed mismatch: %q", got)
	}
}

func TestGoTemplateEngine_BigIntKeepsPrecision(t *testing.T) {
	engine := newEngine(t)
	n, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	if got := render(t, engine, "plain", map[string]any{"n": n}); got != n.String() {
		t.Fatalf("decimal mismatch: %q", got)
	}
	if got := render(t, engine, "signed", map[string]any{"n": n}); got != "0x"+n.Text(16)+" 0x"+n.Text(16) {
		t.Fatalf("hex mismatch: %q", got)
	}
	if n.Sign() <= 0 {
		t.Fatalf("filter mutated its input")
	}
}

func TestGoTemplateEngine_AutoescapeOff(t *testing.T) {
	engine := newEngine(t)

	if got := render(t, engine, "raw", map[string]any{"name": "A & B <c>"}); got != "A & B <c>" {
		t.Fatalf("expected raw output, got %q", got)
	}
}

func TestGoTemplateEngine_BaseDirOverridesFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte("Howdy {{ name }}"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	engine := newEngine(t, gotemplate.WithBaseDir(dir))

	if got := render(t, engine, "hello", map[string]any{"name": "Ada"}); got != "Howdy Ada" {
		t.Fatalf("expected override, got %q", got)
	}
	if got := render(t, engine, "fallback", nil); got != "embedded" {
		t.Fatalf("expected embedded fallback, got %q", got)
	}
}

func TestGoTemplateEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template sources")
	}
	if _, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("expected error for missing base dir")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	_, err := engine.RenderTemplate("badhex", map[string]any{"name": "abc"})
	if err == nil || !strings.Contains(err.Error(), "not a decimal integer") {
		t.Fatalf("expected hex filter to reject non-numeric text, got %v", err)
	}

	var nilEngine *gotemplate.Engine
	if _, err := nilEngine.RenderTemplate("hello", nil); err == nil {
		t.Fatalf("expected error from nil engine")
	}
}
