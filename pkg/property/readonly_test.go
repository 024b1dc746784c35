package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-beam/beam/pkg/errors"
)

func TestReadOnly_Get(t *testing.T) {
	calls := 0
	p := NewReadOnly(func() int {
		calls++
		return 42
	})

	assert.Equal(t, 42, p.Get())
	assert.Equal(t, 42, p.Get())
	assert.Equal(t, 2, calls, "Get should delegate to the accessor every time")
}

func TestReadOnly_NilAccessorPanics(t *testing.T) {
	requireViolation(t, errors.KindInvalidArgument, func() {
		NewReadOnly[int](nil)
	})
}

func TestReadOnly_AddListenerNilPanics(t *testing.T) {
	p := NewReadOnly(func() int { return 0 })

	requireViolation(t, errors.KindInvalidArgument, func() {
		p.AddListener(nil)
	})
	requireViolation(t, errors.KindInvalidArgument, func() {
		p.Watch(nil)
	})
}

func TestReadOnly_RemoveListenerReturnsTrueOnce(t *testing.T) {
	p := NewReadOnly(func() int { return 0 })
	rec := &recorder[int]{}

	reg := p.AddListener(rec.listen())

	assert.True(t, p.RemoveListener(reg))
	assert.False(t, p.RemoveListener(reg), "second removal must report false")
	assert.False(t, p.RemoveListener(nil))
}

func TestReadOnly_RemoveListenerForeignRegistration(t *testing.T) {
	p := NewReadOnly(func() int { return 0 })
	q := NewReadOnly(func() int { return 0 })
	reg := q.AddListener((&recorder[int]{}).listen())

	assert.False(t, p.RemoveListener(reg), "a handle from another property must not remove anything")
	assert.Equal(t, 1, q.ListenerCount())
}

func TestReadOnly_NotifyOrderIsRegistrationOrder(t *testing.T) {
	value := 0
	p := NewReadOnly(func() int { return value })

	var order []string
	p.AddListener(func(_ ObservableValue[int], _, _ int) {
		order = append(order, "first")
	})
	p.Watch(func() {
		order = append(order, "second")
	})
	p.AddListener(func(_ ObservableValue[int], _, _ int) {
		order = append(order, "third")
	})

	value = 1
	p.notify(0)

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestReadOnly_NotifyPassesOldAndNew(t *testing.T) {
	value := 7
	p := NewReadOnly(func() int { return value })
	rec := &recorder[int]{}
	p.AddListener(rec.listen())

	value = 9
	p.notify(7)

	require.Equal(t, []change[int]{{old: 7, new: 9}}, rec.changes)
}

func TestReadOnly_ListenerReceivesOwningProperty(t *testing.T) {
	p := NewProperty(1)

	var got ObservableValue[int]
	p.AddListener(func(owner ObservableValue[int], _, _ int) {
		got = owner
	})
	p.Set(2)

	// Listeners on a Property receive the Property itself, not its
	// embedded read-only base.
	require.Same(t, p, got)
}

func TestReadOnly_RemovalDuringNotification(t *testing.T) {
	p := NewProperty(0)
	rec := &recorder[int]{}

	var later *Registration
	p.AddListener(func(_ ObservableValue[int], _, _ int) {
		p.RemoveListener(later)
	})
	later = p.AddListener(rec.listen())

	p.Set(1)

	assert.Equal(t, 0, rec.count(), "a listener removed mid-notification must not fire")
	assert.Equal(t, 1, p.ListenerCount())
}

func TestReadOnly_AdditionDuringNotification(t *testing.T) {
	p := NewProperty(0)
	rec := &recorder[int]{}

	p.AddListener(func(_ ObservableValue[int], _, _ int) {
		if rec.count() == 0 && p.ListenerCount() == 1 {
			p.AddListener(rec.listen())
		}
	})

	p.Set(1)
	assert.Equal(t, 0, rec.count(), "a listener added mid-notification must not see the in-flight change")

	p.Set(2)
	assert.Equal(t, 1, rec.count())
}

func TestReadOnly_String(t *testing.T) {
	p := NewReadOnly(func() int { return 15 })
	assert.Equal(t, "15", p.String())

	inner := NewProperty("nested")
	outer := NewProperty(inner)
	assert.Equal(t, "nested", outer.String(), "property values render through their own String")
}
