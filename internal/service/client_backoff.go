package service

import (
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/fit-sync/internal/config"
)

// BackoffPolicy computes retry delays: base × 2^(n−1), optionally jittered,
// never above the ceiling.
type BackoffPolicy struct {
	base          time.Duration
	ceiling       time.Duration
	jitterPercent uint64
	maxRetries    int
}

// NewBackoffPolicy builds the policy from the sync section of the client config.
func NewBackoffPolicy(cfg config.ClientSync) *BackoffPolicy {
	p := &BackoffPolicy{
		base:          cfg.BaseBackoff,
		ceiling:       cfg.MaxBackoff,
		jitterPercent: cfg.JitterPercent,
		maxRetries:    cfg.MaxRetries,
	}
	if p.base <= 0 {
		p.base = config.DefaultBaseBackoff
	}
	if p.ceiling < p.base {
		p.ceiling = p.base
	}
	if p.maxRetries < 0 {
		p.maxRetries = 0
	}
	return p
}

// Delay returns the delay before the retry that follows failure number n.
func (p *BackoffPolicy) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}

	b := p.backoff()
	var d time.Duration
	for i := 0; i < n; i++ {
		d, _ = b.Next()
	}
	return d
}

// MaxRetries is the number of automatic retries after the first failure.
func (p *BackoffPolicy) MaxRetries() int {
	return p.maxRetries
}

func (p *BackoffPolicy) backoff() retry.Backoff {
	b := retry.NewExponential(p.base)
	if p.jitterPercent > 0 {
		b = retry.WithJitterPercent(p.jitterPercent, b)
	}
	return retry.WithCappedDuration(p.ceiling, b)
}
