package feconfig

import (
	"io/fs"

	"github.com/goliatone/go-feconfig/pkg/chip"
)

// EmbeddedTemplates exposes the built-in FE template so callers can copy or
// extend it without importing the chip package directly.
func EmbeddedTemplates() fs.FS {
	return chip.TemplatesFS()
}
