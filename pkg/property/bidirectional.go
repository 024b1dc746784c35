package property

import "github.com/go-beam/beam/pkg/errors"

// BindBidirectional keeps two mutable properties in sync in both directions:
// b immediately takes a's current value, and from then on setting either one
// forwards the new value to the other. The returned detach function removes
// both forwarding listeners and is idempotent.
//
// Unlike [Property.Bind], neither property enters bound state, so both stay
// directly settable. Forwarding goes through the public Set, which means the
// equality no-op rule terminates the ping-pong after one hop.
func BindBidirectional[T comparable](a, b WritableValue[T]) (detach func()) {
	const op = "property.BindBidirectional"
	if a == nil || b == nil {
		panic(errors.InvalidArgument(op, "properties must not be nil"))
	}
	if a == b {
		panic(errors.InvalidArgument(op, "cannot bind a property to itself"))
	}

	ra := a.AddListener(func(_ ObservableValue[T], _, v T) { b.Set(v) })
	rb := b.AddListener(func(_ ObservableValue[T], _, v T) { a.Set(v) })
	b.Set(a.Get())

	return func() {
		a.RemoveListener(ra)
		b.RemoveListener(rb)
	}
}
