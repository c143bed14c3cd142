package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("trip not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		guardCopy := g

		// Then
		require.NoError(t, guardCopy.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type plate struct {
		value string
		guard guard.ConstructorGuard
	}
	errPlateNotConstructed := errors.New("plate must be created via newPlate")

	newPlate := func(value string) (plate, error) {
		if value == "" {
			return plate{}, errors.New("plate is required")
		}
		return plate{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("value_built_by_constructor_is_valid", func(t *testing.T) {
		p, err := newPlate("ABC1D23")
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPlateNotConstructed))
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var p plate
		assert.Equal(t, errPlateNotConstructed, p.guard.Validate(errPlateNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
