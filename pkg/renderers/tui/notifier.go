package tui

import (
	"context"

	"github.com/goliatone/go-feconfig/internal/style"
	"github.com/goliatone/go-feconfig/pkg/form"
)

// Notifier shows submission outcomes as boxed messages through a
// PromptDriver.
type Notifier struct {
	driver PromptDriver
}

var _ form.Notifier = (*Notifier)(nil)

// NewNotifier returns a Notifier printing through the configured driver.
func NewNotifier(options ...Option) *Notifier {
	s := applyOptions(options)
	return &Notifier{driver: s.driver}
}

// Success prints a success box.
func (n *Notifier) Success(ctx context.Context, title, message string) error {
	return n.driver.Info(ctx, style.SuccessBox(title, message))
}

// Failure prints an error box.
func (n *Notifier) Failure(ctx context.Context, title, message string) error {
	return n.driver.Info(ctx, style.ErrorBox(title, message))
}
