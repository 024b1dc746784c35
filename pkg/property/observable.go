package property

// ChangeListener is a callback fired when an observable value changes.
// It receives the property that changed, the previous value, and the new value.
type ChangeListener[T comparable] func(p ObservableValue[T], oldValue, newValue T)

// Registration identifies a registered listener so it can be removed later.
// Function values are not comparable, so removal is by handle rather than by
// the callback itself.
type Registration struct {
	id    int
	owner any
}

// Observable is the type-erased observation capability: anything that can
// notify a no-argument callback when it changes. Binding sources are
// Observable, which lets a single binding observe properties of different
// value types.
type Observable interface {
	// Watch registers a callback fired after every change.
	Watch(fn func()) *Registration

	// Unwatch removes a previously registered watch callback. It reports
	// whether a removal occurred.
	Unwatch(r *Registration) bool
}

// ObservableValue is a readable observable: the capability required of a
// Bind source. It carries the value type, so listeners receive typed old and
// new values.
type ObservableValue[T comparable] interface {
	Observable

	// Get returns the current value. It has no side effects.
	Get() T

	// AddListener registers a change listener fired after every change.
	AddListener(fn ChangeListener[T]) *Registration

	// RemoveListener removes a previously registered change listener. It
	// reports whether a removal occurred.
	RemoveListener(r *Registration) bool
}

// WritableValue is a mutable observable value: an ObservableValue that can
// also be set directly or bound to another source.
type WritableValue[T comparable] interface {
	ObservableValue[T]

	// Set stores a new value, notifying listeners if it differs from the
	// current one. Set panics while the value is bound.
	Set(v T)

	// Bind makes this value mirror source until Unbind is called.
	Bind(source ObservableValue[T])

	// Unbind detaches from the bound source, if any.
	Unbind()

	// IsBound reports whether a binding source is currently attached.
	IsBound() bool
}

// IsObservable reports whether x can be observed for changes. It is the
// runtime discrimination point for heterogeneous collections; typed code
// should rely on the interfaces directly.
func IsObservable(x any) bool {
	_, ok := x.(Observable)
	return ok
}

// AsValue reports whether x is an observable value of type T, returning the
// typed view when it is.
func AsValue[T comparable](x any) (ObservableValue[T], bool) {
	v, ok := x.(ObservableValue[T])
	return v, ok
}

// AsWritable reports whether x is a writable value of type T, returning the
// typed view when it is. A read-only view produced by [ReadOnlyWrapper.ReadOnly]
// is not writable.
func AsWritable[T comparable](x any) (WritableValue[T], bool) {
	v, ok := x.(WritableValue[T])
	return v, ok
}

// IsNumberProperty reports whether x is a *NumberProperty.
func IsNumberProperty(x any) bool {
	_, ok := x.(*NumberProperty)
	return ok
}
