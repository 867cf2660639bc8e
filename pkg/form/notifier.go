package form

import "context"

// Notifier presents the outcome of a submission. Implementations block until
// the user has seen the message.
type Notifier interface {
	Success(ctx context.Context, title, message string) error
	Failure(ctx context.Context, title, message string) error
}

// NotifierFuncs adapts plain functions to Notifier. Nil funcs are no-ops.
type NotifierFuncs struct {
	OnSuccess func(ctx context.Context, title, message string) error
	OnFailure func(ctx context.Context, title, message string) error
}

func (n NotifierFuncs) Success(ctx context.Context, title, message string) error {
	if n.OnSuccess == nil {
		return nil
	}
	return n.OnSuccess(ctx, title, message)
}

func (n NotifierFuncs) Failure(ctx context.Context, title, message string) error {
	if n.OnFailure == nil {
		return nil
	}
	return n.OnFailure(ctx, title, message)
}
