package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterIsPerIP(t *testing.T) {
	rl := NewIPRateLimiter(1, 2)

	// Burst of 2 allowed, third request in the same instant is rejected
	a := rl.GetLimiter("10.0.0.1")
	assert.True(t, a.Allow())
	assert.True(t, a.Allow())
	assert.False(t, a.Allow())

	// A different IP has its own fresh bucket
	b := rl.GetLimiter("10.0.0.2")
	assert.True(t, b.Allow())

	// Same IP maps to the same limiter instance
	assert.Same(t, a, rl.GetLimiter("10.0.0.1"))
}
