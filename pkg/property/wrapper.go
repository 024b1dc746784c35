package property

// ReadOnlyWrapper is a mutable property that can hand out a read-only view
// of itself. The view is created lazily on the first ReadOnly call, cached,
// and from then on notified of every owner mutation, whether the owner was
// set directly or updated through a binding.
//
// Deferring view creation avoids the notification wiring for owners whose
// read-only projection is never requested.
type ReadOnlyWrapper[T comparable] struct {
	Property[T]

	view *ReadOnlyProperty[T]
}

// NewReadOnlyWrapper creates a wrapper property holding initial.
func NewReadOnlyWrapper[T comparable](initial T) *ReadOnlyWrapper[T] {
	w := &ReadOnlyWrapper[T]{}
	w.initWrapper(w, initial)
	return w
}

// initWrapper wires the value slot, accessor, and view notification hook for
// w or a subtype embedding it (outer).
func (w *ReadOnlyWrapper[T]) initWrapper(outer ObservableValue[T], initial T) {
	w.value = initial
	w.init(outer, func() T { return w.value })
	w.onChange = func(oldValue T) {
		if w.view != nil {
			w.view.notify(oldValue)
		}
	}
}

// ReadOnly returns the read-only view of this property. The first call
// creates the view; every later call returns the same instance. The view
// reflects mutations made both before and after its creation.
func (w *ReadOnlyWrapper[T]) ReadOnly() *ReadOnlyProperty[T] {
	if w.view == nil {
		w.view = NewReadOnly(func() T { return w.value })
	}
	return w.view
}
