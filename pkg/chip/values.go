package chip

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-feconfig/pkg/model"
)

// Values holds the raw text of each field keyed by label.
type Values map[string]string

// Get returns the raw text for label, or "" when unset.
func (v Values) Get(label string) string {
	if v == nil {
		return ""
	}
	return v[label]
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Defaults returns the initial values of form: every field's Default, which
// is empty for free-text fields.
func Defaults(form model.FormModel) Values {
	out := make(Values, len(form.Fields))
	for _, field := range form.Fields {
		out[field.Label] = field.Default
	}
	return out
}

// ResolveLabels maps raw entries onto form labels. Keys may be a field label
// or a field name, compared case-insensitively; surrounding whitespace on
// keys is ignored. Unknown keys are reported together, sorted, and so are
// keys that resolve to the same field (ErrDuplicateField).
func ResolveLabels(form model.FormModel, raw map[string]string) (Values, error) {
	out := make(Values, len(raw))
	keysByLabel := make(map[string][]string, len(raw))
	var unknown []string
	for key, value := range raw {
		field, ok := lookupField(form, key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		keysByLabel[field.Label] = append(keysByLabel[field.Label], key)
		out[field.Label] = value
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("chip: unknown field(s): %s", strings.Join(unknown, ", "))
	}

	var dups []string
	for label, keys := range keysByLabel {
		if len(keys) < 2 {
			continue
		}
		sort.Strings(keys)
		dups = append(dups, fmt.Sprintf("%s (%s)", label, strings.Join(keys, ", ")))
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return nil, fmt.Errorf("%w: %s", ErrDuplicateField, strings.Join(dups, "; "))
	}
	return out, nil
}

func lookupField(form model.FormModel, key string) (model.Field, bool) {
	key = strings.TrimSpace(key)
	if field, ok := form.Field(key); ok {
		return field, true
	}
	for _, field := range form.Fields {
		if strings.EqualFold(field.Label, key) || strings.EqualFold(field.Name, key) {
			return field, true
		}
	}
	return model.Field{}, false
}
