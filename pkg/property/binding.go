package property

import "github.com/go-beam/beam/pkg/errors"

// Binding is a read-only property whose value is derived from one or more
// source properties through a compute function. Whenever any source changes,
// the binding recomputes synchronously; if the result differs from the
// cached value, the binding notifies its own listeners, so bindings chain.
//
// Sources are type-erased [Observable] values, so a single binding may
// observe properties of different value types; the compute function reads
// them directly.
type Binding[T comparable] struct {
	ReadOnlyProperty[T]

	compute func() T
	value   T
	sources []Observable
	regs    []*Registration
}

// NewBinding creates a binding over sources whose value is produced by
// compute. Duplicate sources are collapsed; at least one distinct source is
// required. The initial value is computed eagerly.
func NewBinding[T comparable](compute func() T, sources ...Observable) *Binding[T] {
	const op = "property.NewBinding"
	if compute == nil {
		panic(errors.InvalidArgument(op, "compute function must not be nil"))
	}
	var distinct []Observable
	for _, s := range sources {
		if s == nil {
			panic(errors.InvalidArgument(op, "source must not be nil"))
		}
		seen := false
		for _, d := range distinct {
			if d == s {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, s)
		}
	}
	if len(distinct) == 0 {
		panic(errors.InvalidArgument(op, "binding requires at least one source"))
	}

	b := &Binding[T]{compute: compute, sources: distinct}
	b.init(b, func() T { return b.value })
	b.value = compute()
	for _, s := range distinct {
		b.regs = append(b.regs, s.Watch(b.invalidate))
	}
	return b
}

// invalidate is the shared watch callback attached to every source. It
// recomputes and notifies only when the result differs from the cached
// value; Get reads the cache and never recomputes.
func (b *Binding[T]) invalidate() {
	next := b.compute()
	if next == b.value {
		return
	}
	oldValue := b.value
	b.value = next
	b.notify(oldValue)
}

// Unbind detaches the binding from all of its sources. The binding no longer
// updates, but its last value remains readable through Get. Unbind is
// idempotent.
func (b *Binding[T]) Unbind() {
	for i, s := range b.sources {
		s.Unwatch(b.regs[i])
	}
	b.sources = nil
	b.regs = nil
}
