package fetchcache

import "context"

// Result is the uniform shape of a fetch outcome. Live computations and
// reconstructed cache hits both satisfy it, so the caller cannot distinguish
// the two by the returned value.
type Result[V any] interface {
	// Materialize resolves the result to its plain value.
	Materialize(ctx context.Context) (V, error)
}

// ResultFunc adapts a plain function to a Result.
type ResultFunc[V any] func(ctx context.Context) (V, error)

func (f ResultFunc[V]) Materialize(ctx context.Context) (V, error) { return f(ctx) }

// Value wraps an already-resolved value as a Result.
func Value[V any](v V) Result[V] { return materialized[V]{v: v} }

// materialized is what the gateway hands back on hits and on the miss path
// after storing: a snapshot that resolves without further work.
type materialized[V any] struct {
	v V
}

var _ Result[struct{}] = materialized[struct{}]{}

func (m materialized[V]) Materialize(context.Context) (V, error) { return m.v, nil }
