package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	okService := func() error { return nil }
	errService := errors.New("service error")
	failingService := func() error { return errService }

	tests := []struct {
		name string
		run  func(t *testing.T, cb circuit_breaker.CircuitBreaker, clock *fakeClock)
	}{
		{
			name: "stays closed on success",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, _ *fakeClock) {
				for i := 0; i < 50; i++ {
					require.NoError(t, cb.Call(okService))
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "opens after threshold and rejects calls",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, _ *fakeClock) {
				for i := 0; i < 3; i++ {
					require.ErrorIs(t, cb.Call(failingService), errService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())

				called := false
				err := cb.Call(func() error { called = true; return nil })
				require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
				require.False(t, called)
			},
		},
		{
			name: "half-open recovers to closed",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, clock *fakeClock) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(failingService)
				}
				clock.Advance(3 * time.Second)
				require.NoError(t, cb.Call(okService))
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.NoError(t, cb.Call(okService))
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "half-open failure reopens",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, clock *fakeClock) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(failingService)
				}
				clock.Advance(3 * time.Second)
				require.ErrorIs(t, cb.Call(failingService), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())
				require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			cb := circuit_breaker.New(10, 2*time.Second, 0.3, 2, circuit_breaker.WithClock(clock.Now))
			tt.run(t, cb, clock)
		})
	}
}
