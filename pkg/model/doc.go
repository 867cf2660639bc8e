// Package model defines the typed form model consumed by controllers and
// renderers. A FormModel is an ordered list of fields keyed by their label;
// integer fields record the base their raw text is read in through Format
// (FormatDecimal or FormatHex) and enumerated fields list their options in
// Enum. Definitions live in internal/model and are re-exported here so the
// model stays a plain data contract without behaviour of its own beyond
// lookups.
package model
