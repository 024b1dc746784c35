// Package property provides observable value containers and dependency
// bindings for building reactive state.
//
// This package defines the foundational types for reactive values: mutable
// and read-only properties that hold a value and notify listeners on change,
// and bindings whose value is derived from other properties and recomputed
// automatically whenever any source changes.
//
// # Core Types
//
// ReadOnlyProperty wraps a value accessor and manages an ordered listener
// list. It is the base of every other type in this package.
//
// Property adds mutation: Set stores a new value and notifies listeners, and
// Bind makes the property mirror another observable value, during which
// direct Set calls are rejected.
//
// ReadOnlyWrapper is a Property that can hand out a cached read-only view of
// itself, kept in sync with the owner.
//
// NumberProperty is a ReadOnlyWrapper over float64 with arithmetic mutators.
//
// Binding derives its value from one or more source properties through a
// compute function. It recomputes synchronously on every source change and
// notifies its own listeners only when the recomputed value differs.
//
// # Listeners
//
// Listeners come in two shapes. A ChangeListener receives the property and
// the old and new values. A watch callback takes no arguments and is what
// bindings use internally. Both are registered in one ordered list and fire
// in registration order. Registration returns a handle used for removal:
//
//	count := property.NewProperty(0)
//	reg := count.AddListener(func(_ property.ObservableValue[int], old, new int) {
//	    fmt.Printf("count: %d -> %d\n", old, new)
//	})
//	count.Set(5)
//	count.RemoveListener(reg)
//
// # Change Propagation
//
// Propagation is single-threaded, synchronous, and depth-first: a Set call
// notifies listeners before it returns, and a dependent binding's own
// notification nests inside that call stack. Setting a property to a value
// equal to its current value is a no-op and fires nothing. Equality is the
// language's == on the value type, never deep equality.
//
// # Contract Violations
//
// Misuse (setting a bound property, a zero divisor, an empty binding source
// list, nil callbacks) panics with a [github.com/go-beam/beam/pkg/errors.Violation].
// See that package for recovering at embedding boundaries.
//
// # Constructor Conventions
//
// All types use NewX() constructors returning pointers:
//
//	name := property.NewProperty("anonymous")
//	total := property.NewNumberProperty(0)
//	sum := property.NewBinding(func() float64 { return a.Get() + b.Get() }, a, b)
package property
