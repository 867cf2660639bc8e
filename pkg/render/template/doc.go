// Package template defines the renderer-agnostic template contract the FE
// document is produced through. The gotemplate subpackage implements it on
// top of pongo2 so documents can be loaded from an embedded fs.FS, a
// directory on disk, or both with the directory taking precedence.
package template
