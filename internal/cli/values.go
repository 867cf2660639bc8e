package cli

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-feconfig/pkg/chip"
	"github.com/goliatone/go-feconfig/pkg/model"
	"github.com/goliatone/go-feconfig/pkg/store"
)

// loadValuesFile reads a flat YAML (or JSON) mapping of field values. Keys
// are field labels or names; scalars are kept as written so "0x800" and
// "0800" reach the converter untouched. Null values clear the field.
func loadValuesFile(ctx context.Context, s *store.Store, path string, form model.FormModel) (chip.Values, error) {
	data, err := s.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("values: read %s: %w", path, err)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("values: parse %s: %w", path, err)
	}

	raw := make(map[string]string, len(doc))
	for key, node := range doc {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("values: %s: %q must be a scalar", path, key)
		}
		if node.Tag == "!!null" {
			raw[key] = ""
			continue
		}
		raw[key] = node.Value
	}

	values, err := chip.ResolveLabels(form, raw)
	if err != nil {
		return nil, fmt.Errorf("values: %s: %w", path, err)
	}
	return values, nil
}
