package resilience

import (
	"context"
	"testing"
	"time"

	"routecast/internal/errors"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream down")

func newTestBreaker(clock *time.Time, transitions *[]State) *CircuitBreaker {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:         "osrm",
		MaxFailures:  2,
		ResetTimeout: time.Minute,
		OnStateChange: func(_ string, _, to State) {
			*transitions = append(*transitions, to)
		},
	})
	cb.now = func() time.Time { return *clock }

	return cb
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	clock := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)

	assert.ErrorIs(t, cb.Execute(func() error { return errUpstream }), errUpstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(func() error { return errUpstream }), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true

		return nil
	})

	assert.True(t, errors.Is(err, ErrCircuitOpen))
	assert.False(t, called)
	assert.Equal(t, []State{StateOpen}, transitions)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	clock := time.Now()
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)

	_ = cb.Execute(func() error { return errUpstream })
	_ = cb.Execute(func() error { return nil })
	_ = cb.Execute(func() error { return errUpstream })

	assert.Equal(t, StateClosed, cb.State())
	assert.Empty(t, transitions)
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	clock := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)

	_ = cb.Execute(func() error { return errUpstream })
	_ = cb.Execute(func() error { return errUpstream })

	clock = clock.Add(2 * time.Minute)
	assert.ErrorIs(t, cb.Execute(func() error { return errUpstream }), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	clock = clock.Add(2 * time.Minute)
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:        "weather",
		MaxFailures: 1,
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
	})

	err := cb.Execute(func() error { return context.Canceled })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}
