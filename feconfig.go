package feconfig

import (
	"context"

	"github.com/goliatone/go-feconfig/pkg/chip"
	"github.com/goliatone/go-feconfig/pkg/form"
)

// Values aliases chip.Values: raw field text keyed by label.
type Values = chip.Values

// Result aliases form.Result for callers using the top-level helpers.
type Result = form.Result

// NewController exposes the form controller constructor from the top-level
// module.
func NewController(options ...form.Option) *form.Controller {
	return form.New(options...)
}

// Generate fills a fresh controller with values and submits it once. It is
// the simplest entry point for callers that already hold every field.
func Generate(ctx context.Context, values Values, options ...form.Option) (Result, error) {
	controller := form.New(options...)
	if err := controller.SetFields(values); err != nil {
		return Result{}, err
	}
	return controller.Submit(ctx)
}

// Preview converts values and renders the FE document with the embedded
// template without writing anything.
func Preview(values Values) (chip.Document, error) {
	renderer, err := chip.NewRenderer("")
	if err != nil {
		return nil, err
	}
	return chip.Generate(renderer, values)
}
