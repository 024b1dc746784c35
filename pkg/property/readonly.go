package property

import (
	"fmt"

	"github.com/go-beam/beam/pkg/errors"
)

// listenerEntry is one slot in a property's ordered listener list. Exactly
// one of change or watch is set.
type listenerEntry[T comparable] struct {
	id      int
	change  ChangeListener[T]
	watch   func()
	removed bool
}

// ReadOnlyProperty is an observable value without a public mutator. Its
// value comes from an accessor function supplied at construction, and its
// listeners fire whenever an owning subtype reports a change.
//
// ReadOnlyProperty is the base of [Property], [ReadOnlyWrapper],
// [NumberProperty], and [Binding]. All of them share its listener mechanics.
//
// ReadOnlyProperty is not thread-safe. All access must happen on a single
// goroutine; change propagation is synchronous within the mutating call.
type ReadOnlyProperty[T comparable] struct {
	accessor func() T
	entries  []*listenerEntry[T]
	nextID   int

	// self is the outermost instance, so listeners receive the property
	// they were registered on rather than an embedded base.
	self ObservableValue[T]
}

// NewReadOnly creates a read-only property whose value is produced by
// accessor. The accessor must be side-effect free; it is invoked on every
// Get and on every notification.
func NewReadOnly[T comparable](accessor func() T) *ReadOnlyProperty[T] {
	if accessor == nil {
		panic(errors.InvalidArgument("property.NewReadOnly", "accessor must not be nil"))
	}
	p := &ReadOnlyProperty[T]{accessor: accessor}
	p.self = p
	return p
}

// init wires an embedded ReadOnlyProperty: self is the outermost instance
// and accessor produces the current value.
func (p *ReadOnlyProperty[T]) init(self ObservableValue[T], accessor func() T) {
	p.self = self
	p.accessor = accessor
}

// Get returns the current value. It has no side effects.
func (p *ReadOnlyProperty[T]) Get() T {
	return p.accessor()
}

// AddListener registers a change listener fired after every change, in
// registration order relative to other listeners and watch callbacks.
// It returns the handle used for removal.
func (p *ReadOnlyProperty[T]) AddListener(fn ChangeListener[T]) *Registration {
	if fn == nil {
		panic(errors.InvalidArgument("property.AddListener", "listener must not be nil"))
	}
	return p.register(&listenerEntry[T]{change: fn})
}

// RemoveListener removes the listener identified by r. It returns true
// exactly once per registration: false for a second removal, a nil handle,
// or a handle issued by another property.
func (p *ReadOnlyProperty[T]) RemoveListener(r *Registration) bool {
	return p.remove(r)
}

// Watch registers a no-argument callback fired after every change. Bindings
// observe their sources this way; it is also the hook for code that only
// needs an invalidation signal.
func (p *ReadOnlyProperty[T]) Watch(fn func()) *Registration {
	if fn == nil {
		panic(errors.InvalidArgument("property.Watch", "callback must not be nil"))
	}
	return p.register(&listenerEntry[T]{watch: fn})
}

// Unwatch removes the watch callback identified by r. Same semantics as
// RemoveListener.
func (p *ReadOnlyProperty[T]) Unwatch(r *Registration) bool {
	return p.remove(r)
}

// ListenerCount returns the number of registered listeners and watch
// callbacks.
func (p *ReadOnlyProperty[T]) ListenerCount() int {
	return len(p.entries)
}

func (p *ReadOnlyProperty[T]) register(e *listenerEntry[T]) *Registration {
	e.id = p.nextID
	p.nextID++
	p.entries = append(p.entries, e)
	return &Registration{id: e.id, owner: p}
}

func (p *ReadOnlyProperty[T]) remove(r *Registration) bool {
	if r == nil || r.owner != any(p) {
		return false
	}
	for i, e := range p.entries {
		if e.id == r.id {
			e.removed = true
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// notify recomputes the new value and invokes every registered listener with
// the old and new values, in registration order. Only owning subtypes call
// it, after they have stored a changed value.
//
// The listener list is snapshotted when notification begins: listeners added
// during notification do not see the in-flight change, and listeners removed
// during notification no longer fire.
func (p *ReadOnlyProperty[T]) notify(oldValue T) {
	newValue := p.Get()
	snapshot := make([]*listenerEntry[T], len(p.entries))
	copy(snapshot, p.entries)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if e.change != nil {
			e.change(p.self, oldValue, newValue)
		} else {
			e.watch()
		}
	}
}

// String returns the textual form of the current value. Values that are
// themselves properties render through their own String method.
func (p *ReadOnlyProperty[T]) String() string {
	return fmt.Sprintf("%v", p.Get())
}
