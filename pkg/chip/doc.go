// Package chip turns the raw text of the FE configuration form into the FE
// format document.
//
// Convert is pure: it parses the numeric fields in their fixed bases, derives
// the page count, skip mask and hexadecimal block values and returns a Config
// or a *ConversionError naming the first field that failed. Render feeds a
// Config through a template.TemplateRenderer (NewRenderer wires the embedded
// chip.tpl) and returns the Document that callers persist.
package chip
