package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type Option func(cb *circuitBreaker)

// WithClock replaces time.Now, used by tests to move past the open timeout.
func WithClock(now func() time.Time) Option {
	return func(cb *circuitBreaker) {
		cb.now = now
	}
}

type circuitBreaker struct {
	mu    sync.Mutex
	now   func() time.Time
	state Status

	// window of the last results, true marks a failure
	window []bool
	pos    int
	// failure ratio of the window that opens the breaker
	threshold float64
	// time spent open before a trial call is allowed
	timeout  time.Duration
	openedAt time.Time
	// consecutive successes in half-open needed to close
	recoveryRequests int
	successCount     int
}

func New(windowSize int, timeout time.Duration, threshold float64, recoveryRequests int, opts ...Option) CircuitBreaker {
	if windowSize <= 0 {
		windowSize = 1
	}
	cb := &circuitBreaker{
		now:              time.Now,
		state:            Closed,
		window:           make([]bool, windowSize),
		threshold:        threshold,
		timeout:          timeout,
		recoveryRequests: recoveryRequests,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.window)

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
		return nil
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.threshold {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
