package tx

import "context"

// Manager wraps operations that touch more than one collection,
// such as a course delete cascading into the sessions collection.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
