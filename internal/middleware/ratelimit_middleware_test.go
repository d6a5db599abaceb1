package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter(t *testing.T) {
	rl := NewLoginRateLimiter()
	ip := "192.0.2.1"

	assert.False(t, rl.Limited(ip))

	for i := 0; i < 4; i++ {
		rl.RecordFailure(ip)
	}
	assert.False(t, rl.Limited(ip))

	rl.RecordFailure(ip)
	assert.True(t, rl.Limited(ip))

	assert.False(t, rl.Limited("192.0.2.2"))
}

func TestLoginRateLimiterWindowExpiry(t *testing.T) {
	rl := NewLoginRateLimiter()
	ip := "192.0.2.3"

	for i := 0; i < 5; i++ {
		rl.RecordFailure(ip)
	}
	assert.True(t, rl.Limited(ip))

	// Age the window artificially instead of sleeping a full minute.
	rl.mu.Lock()
	rl.attempts[ip].firstAt = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	assert.False(t, rl.Limited(ip))
}
