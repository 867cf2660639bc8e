package model

import "strings"

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeEnum    FieldType = "enum"
)

// Integer fields carry their numeric base in Format so prompts and converters
// agree on how the raw text is read.
const (
	FormatDecimal = "decimal"
	FormatHex     = "hex"
)

// Field models an individual input inside the form. Struct fields are
// annotated so field models can be serialised for snapshots and values files.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label" yaml:"label"`
	Type        FieldType         `json:"type" yaml:"type"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// HasOption reports whether value is one of the enum options. Fields without
// an enum accept any value.
func (f Field) HasOption(value string) bool {
	if len(f.Enum) == 0 {
		return true
	}
	for _, option := range f.Enum {
		if option == value {
			return true
		}
	}
	return false
}

// FormModel is the ordered set of fields a controller owns and a renderer
// walks.
type FormModel struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Action      string            `json:"action,omitempty" yaml:"action,omitempty"`
	Fields      []Field           `json:"fields" yaml:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Field looks up a field by label. Surrounding whitespace on the label is
// ignored.
func (m FormModel) Field(label string) (Field, bool) {
	label = strings.TrimSpace(label)
	for _, field := range m.Fields {
		if field.Label == label {
			return field, true
		}
	}
	return Field{}, false
}

// Labels returns the field labels in form order.
func (m FormModel) Labels() []string {
	out := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		out = append(out, field.Label)
	}
	return out
}
