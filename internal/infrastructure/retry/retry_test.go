package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast retries without meaningful pauses.
var fast = Config{
	Attempts:  5,
	FirstWait: time.Millisecond,
	MaxWait:   5 * time.Millisecond,
	Growth:    2.0,
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	err := Do(context.Background(), Connect, func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	var attempts int32

	err := Do(context.Background(), fast, func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_AttemptsExhausted(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		want     int32
	}{
		{name: "three tries", attempts: 3, want: 3},
		{name: "single try", attempts: 1, want: 1},
		{name: "zero means one", attempts: 0, want: 1},
		{name: "negative means one", attempts: -2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fast
			cfg.Attempts = tt.attempts
			cause := errors.New("connection refused")
			var attempts int32

			err := Do(context.Background(), cfg, func(ctx context.Context) error {
				atomic.AddInt32(&attempts, 1)
				return cause
			})

			assert.ErrorIs(t, err, cause)
			assert.Equal(t, tt.want, attempts)
		})
	}
}

func TestDo_PermanentStopsRetries(t *testing.T) {
	var attempts int32
	cause := errors.New("password authentication failed")

	err := Do(context.Background(), fast, func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return NewPermanent(cause)
	})

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, int32(1), attempts)
}

func TestDo_RetryablePredicate(t *testing.T) {
	transient := errors.New("transient")
	fatal := errors.New("fatal")

	var attempts int32
	cfg := fast
	cfg.Retryable = func(err error) bool { return errors.Is(err, transient) }

	err := Do(context.Background(), cfg, func(ctx context.Context) error {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return transient
		}
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, int32(2), attempts)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var attempts int32

	cfg := Config{Attempts: 5, FirstWait: time.Second, MaxWait: time.Second, Growth: 1}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Do(ctx, cfg, func(ctx context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("not yet")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), attempts)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDo_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false

	err := Do(ctx, fast, func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDo_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "planner")

	err := Do(ctx, Config{}, func(got context.Context) error {
		assert.Equal(t, "planner", got.Value(key{}))
		return nil
	})

	require.NoError(t, err)
}

func TestConfig_Wait(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		n       int
		wantMin time.Duration
		wantMax time.Duration
	}{
		{
			name:    "first pause",
			cfg:     Config{FirstWait: 100 * time.Millisecond, Growth: 2},
			n:       1,
			wantMin: 100 * time.Millisecond, wantMax: 100 * time.Millisecond,
		},
		{
			name:    "grows per failure",
			cfg:     Config{FirstWait: 100 * time.Millisecond, Growth: 2},
			n:       3,
			wantMin: 400 * time.Millisecond, wantMax: 400 * time.Millisecond,
		},
		{
			name:    "growth below one keeps pause flat",
			cfg:     Config{FirstWait: 100 * time.Millisecond, Growth: 0.5},
			n:       4,
			wantMin: 100 * time.Millisecond, wantMax: 100 * time.Millisecond,
		},
		{
			name:    "jitter bounded",
			cfg:     Config{FirstWait: 100 * time.Millisecond, Growth: 1, Jitter: 0.5},
			n:       1,
			wantMin: 100 * time.Millisecond, wantMax: 150 * time.Millisecond,
		},
		{
			name:    "capped",
			cfg:     Config{FirstWait: time.Second, MaxWait: 2 * time.Second, Growth: 2, Jitter: 0.1},
			n:       5,
			wantMin: 2 * time.Second, wantMax: 2 * time.Second,
		},
		{
			name:    "no cap",
			cfg:     Config{FirstWait: 5 * time.Second, Growth: 1},
			n:       2,
			wantMin: 5 * time.Second, wantMax: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.wait(tt.n)
			assert.GreaterOrEqual(t, got, tt.wantMin)
			assert.LessOrEqual(t, got, tt.wantMax)
		})
	}
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))
	assert.Equal(t, "permanent error", (&Permanent{}).Error())

	cause := errors.New("bad credentials")
	err := NewPermanent(cause)
	assert.Equal(t, "bad credentials", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsPermanent(err))
	assert.False(t, IsPermanent(cause))
	assert.False(t, SkipPermanent(err))
	assert.True(t, SkipPermanent(cause))
}

func TestConnectConfig(t *testing.T) {
	assert.Equal(t, 5, Connect.Attempts)
	assert.Equal(t, 200*time.Millisecond, Connect.FirstWait)
	assert.Equal(t, 2*time.Second, Connect.MaxWait)
	assert.Nil(t, Connect.Retryable)
}
