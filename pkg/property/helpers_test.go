package property

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-beam/beam/pkg/errors"
)

// change records one listener invocation.
type change[T comparable] struct {
	old, new T
}

// recorder collects listener invocations for assertions.
type recorder[T comparable] struct {
	changes []change[T]
}

func (r *recorder[T]) listen() ChangeListener[T] {
	return func(_ ObservableValue[T], oldValue, newValue T) {
		r.changes = append(r.changes, change[T]{old: oldValue, new: newValue})
	}
}

func (r *recorder[T]) count() int {
	return len(r.changes)
}

// requireViolation asserts that fn panics with a violation of the given kind.
func requireViolation(t *testing.T, kind errors.Kind, fn func()) {
	t.Helper()
	err := errors.Catch(fn)
	require.Error(t, err, "expected a violation panic")
	v, ok := err.(*errors.Violation)
	require.True(t, ok, "expected *errors.Violation, got %T", err)
	require.Equal(t, kind, v.Kind)
}
