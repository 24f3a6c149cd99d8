package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 12.5, SafeFloat(12.5))
	assert.Equal(t, 3.0, SafeFloat(3))
	assert.Equal(t, 3.0, SafeFloat(int32(3)))
	assert.Equal(t, 3.0, SafeFloat(int64(3)))
	assert.Equal(t, 2.5, SafeFloat(float32(2.5)))
	assert.Equal(t, 42.0, SafeFloat("42"))
	assert.Equal(t, -1.5, SafeFloat("-1.5"))

	assert.Equal(t, 0.0, SafeFloat("not a number"))
	assert.Equal(t, 0.0, SafeFloat(""))
	assert.Equal(t, 0.0, SafeFloat(nil))
	assert.Equal(t, 0.0, SafeFloat(true))
	assert.Equal(t, 0.0, SafeFloat([]string{"1"}))
	assert.Equal(t, 0.0, SafeFloat(math.NaN()))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(1)))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(-1)))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 5.0, safeDiv(10, 2))
	assert.Equal(t, 0.0, safeDiv(10, 0))
	assert.Equal(t, 0.0, safeDiv(10, -3))
	assert.Equal(t, 0.0, safeDiv(0, 0))
}
