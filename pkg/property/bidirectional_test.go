package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-beam/beam/pkg/errors"
)

func TestBindBidirectional_SyncsBothWays(t *testing.T) {
	a := NewProperty("left")
	b := NewProperty("right")

	BindBidirectional[string](a, b)
	assert.Equal(t, "left", b.Get(), "b must take a's value on attach")

	a.Set("from-a")
	assert.Equal(t, "from-a", b.Get())

	b.Set("from-b")
	assert.Equal(t, "from-b", a.Get())
}

func TestBindBidirectional_NoBoundState(t *testing.T) {
	a := NewProperty(1)
	b := NewProperty(2)

	BindBidirectional[int](a, b)

	assert.False(t, a.IsBound())
	assert.False(t, b.IsBound())
}

func TestBindBidirectional_NotificationsFireOncePerChange(t *testing.T) {
	a := NewProperty(0)
	b := NewProperty(0)
	recA := &recorder[int]{}
	recB := &recorder[int]{}
	a.AddListener(recA.listen())
	b.AddListener(recB.listen())

	BindBidirectional[int](a, b)
	a.Set(5)

	// The equality no-op rule stops the ping-pong after one hop.
	assert.Equal(t, 1, recA.count())
	assert.Equal(t, 1, recB.count())
}

func TestBindBidirectional_Detach(t *testing.T) {
	a := NewProperty(1)
	b := NewProperty(2)

	detach := BindBidirectional[int](a, b)
	detach()

	a.Set(10)
	assert.Equal(t, 1, b.Get(), "detached properties must not forward")

	detach() // idempotent
	assert.Equal(t, 0, a.ListenerCount())
	assert.Equal(t, 0, b.ListenerCount())
}

func TestBindBidirectional_Violations(t *testing.T) {
	a := NewProperty(1)

	requireViolation(t, errors.KindInvalidArgument, func() {
		BindBidirectional[int](a, nil)
	})
	requireViolation(t, errors.KindInvalidArgument, func() {
		BindBidirectional[int](a, a)
	})
}
