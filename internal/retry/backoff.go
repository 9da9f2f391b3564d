package retry

import (
	"math"
	"math/rand"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/config"
)

// WithDefaults fills zero fields with the defaults used across the Kafka
// clients.
func WithDefaults(c config.RetryConfig) config.RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = 100 * time.Millisecond
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 10 * time.Second
	}
	return c
}

// Backoff returns the delay before retry number attempt (zero based):
// exponential, capped at MaxDelay, with +/-15% jitter when enabled.
func Backoff(c config.RetryConfig, attempt int) time.Duration {
	delay := c.MaxDelay
	if d := math.Pow(2, float64(attempt)) * float64(c.BaseDelay); d < float64(c.MaxDelay) {
		delay = time.Duration(d)
	}

	if c.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
