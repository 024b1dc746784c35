package property

import "github.com/go-beam/beam/pkg/errors"

// NumberProperty is a mutable numeric property with arithmetic mutators.
// Values are IEEE-754 doubles; NaN and the infinities are accepted like any
// other float64. Note that setting a NaN value over NaN always notifies,
// since NaN compares unequal to itself.
//
// Like its base [ReadOnlyWrapper], a NumberProperty can hand out a cached
// read-only view, and every mutator panics while the property is bound.
type NumberProperty struct {
	ReadOnlyWrapper[float64]
}

// NewNumberProperty creates a numeric property holding initial.
func NewNumberProperty(initial float64) *NumberProperty {
	n := &NumberProperty{}
	n.initWrapper(n, initial)
	return n
}

// Add sets the property to its current value plus v.
func (n *NumberProperty) Add(v float64) {
	n.Set(n.Get() + v)
}

// Subtract sets the property to its current value minus v.
func (n *NumberProperty) Subtract(v float64) {
	n.Set(n.Get() - v)
}

// Multiply sets the property to its current value times v.
func (n *NumberProperty) Multiply(v float64) {
	n.Set(n.Get() * v)
}

// Divide sets the property to its current value divided by d. A zero
// divisor panics with an invalid-argument violation.
func (n *NumberProperty) Divide(d float64) {
	if d == 0 {
		panic(errors.InvalidArgument("property.Divide", "divisor must not be zero"))
	}
	n.Set(n.Get() / d)
}

// Increment adds one to the current value.
func (n *NumberProperty) Increment() {
	n.Add(1)
}

// Decrement subtracts one from the current value.
func (n *NumberProperty) Decrement() {
	n.Subtract(1)
}
