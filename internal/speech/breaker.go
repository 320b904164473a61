package speech

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSynthesizer wraps a synthesizer with a circuit breaker so a
// misbehaving or rate-limiting remote API trips open instead of being
// hammered line after line. While the breaker is open, synthesis calls
// fail fast; the orchestrator treats that like any other per-line
// failure.
type BreakerSynthesizer struct {
	inner   Synthesizer
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerSynthesizer wraps the given synthesizer with a breaker that
// opens after 3 consecutive failures and probes again after 30 seconds
func NewBreakerSynthesizer(inner Synthesizer) *BreakerSynthesizer {
	settings := gobreaker.Settings{
		Name:    inner.Name() + "-tts",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &BreakerSynthesizer{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// SynthesizeIPA synthesizes through the circuit breaker
func (b *BreakerSynthesizer) SynthesizeIPA(ctx context.Context, ipa, languageCode string) ([]byte, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.SynthesizeIPA(ctx, ipa, languageCode)
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// Name returns the wrapped provider name
func (b *BreakerSynthesizer) Name() string {
	return b.inner.Name()
}
