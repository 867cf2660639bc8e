// Package form implements the FE configuration form controller. A Controller
// owns the raw text of every field, and Submit converts it, renders the FE
// document, writes it to the output path and reports the outcome through a
// Notifier exactly once per attempt. The controller has no presentation of
// its own; renderers drive it through SetField and Submit.
package form
