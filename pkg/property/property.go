package property

import "github.com/go-beam/beam/pkg/errors"

// Property is a mutable observable value container. It owns its value slot
// and notifies listeners on every effective change.
//
// A Property can be bound to any [ObservableValue] of the same value type,
// after which it mirrors the source on every source change and rejects
// direct Set calls until Unbind.
type Property[T comparable] struct {
	ReadOnlyProperty[T]

	value     T
	source    ObservableValue[T]
	sourceReg *Registration

	// onChange, when set by a wrapping subtype, runs after every effective
	// change with the pre-change value. Bind forwarding goes through it too.
	onChange func(oldValue T)
}

// NewProperty creates a mutable property holding initial.
func NewProperty[T comparable](initial T) *Property[T] {
	p := &Property[T]{value: initial}
	p.init(p, func() T { return p.value })
	return p
}

// Set stores v and notifies listeners. Setting a value equal to the current
// one is a no-op and fires nothing. Set panics with an illegal-state
// violation while the property is bound; bound properties change only
// through their source.
func (p *Property[T]) Set(v T) {
	if p.source != nil {
		panic(errors.IllegalState("property.Set", "cannot set a bound property"))
	}
	p.setValue(v)
}

// setValue is the internal setter: it bypasses the bound-state guard so bind
// forwarding can update the mirror without weakening the guard for external
// callers.
func (p *Property[T]) setValue(v T) {
	if v == p.value {
		return
	}
	oldValue := p.value
	p.value = v
	p.notify(oldValue)
	if p.onChange != nil {
		p.onChange(oldValue)
	}
}

// IsBound reports whether a binding source is currently attached.
func (p *Property[T]) IsBound() bool {
	return p.source != nil
}

// Bind makes this property mirror source: it immediately takes source's
// current value and follows every subsequent change until Unbind. Binding to
// the source already attached is a no-op; binding to a different source
// replaces the previous binding.
func (p *Property[T]) Bind(source ObservableValue[T]) {
	if source == nil {
		panic(errors.InvalidArgument("property.Bind", "source must not be nil"))
	}
	if source == p.source {
		return
	}
	p.Unbind()
	p.source = source
	p.sourceReg = source.AddListener(func(_ ObservableValue[T], _, v T) {
		p.setValue(v)
	})
	p.setValue(source.Get())
}

// Unbind detaches from the bound source and restores direct mutability.
// Calling it while unbound is a no-op.
func (p *Property[T]) Unbind() {
	if p.source == nil {
		return
	}
	p.source.RemoveListener(p.sourceReg)
	p.source = nil
	p.sourceReg = nil
}
