package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultsToNormal(t *testing.T) {
	m := New()
	assert.Equal(t, StateNormal, m.Get(42))
}

func TestSetAndGet(t *testing.T) {
	m := New()
	m.Set(42, StateAddingPantry)
	assert.Equal(t, StateAddingPantry, m.Get(42))
	assert.Equal(t, StateNormal, m.Get(43))
}

func TestClear(t *testing.T) {
	m := New()
	m.Set(42, StateLoggingMeal)
	m.Clear(42)
	assert.Equal(t, StateNormal, m.Get(42))
}
