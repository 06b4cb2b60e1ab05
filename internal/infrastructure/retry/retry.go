// Package retry waits out transient start-up failures, such as a database
// container that does not accept connections yet. Planning is never retried.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Config describes how many times and how patiently an operation is retried.
type Config struct {
	// Attempts is the total number of tries, the first one included.
	// Zero or less means a single try.
	Attempts int

	// FirstWait is the pause after the first failure.
	FirstWait time.Duration

	// MaxWait bounds every pause. Zero leaves pauses unbounded.
	MaxWait time.Duration

	// Growth multiplies the pause after each further failure.
	Growth float64

	// Jitter adds a random share of up to this fraction to each pause.
	Jitter float64

	// Retryable decides whether a failure deserves another try.
	// Nil retries everything that is not marked Permanent.
	Retryable func(error) bool
}

// Connect suits a database that is still starting up: five tries over
// roughly three seconds.
var Connect = Config{
	Attempts:  5,
	FirstWait: 200 * time.Millisecond,
	MaxWait:   2 * time.Second,
	Growth:    2.0,
	Jitter:    0.1,
}

// Do calls fn until it succeeds, the tries run out, fn fails permanently, or
// ctx ends. The error is fn's last error, or ctx.Err() if ctx ended first.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	retryable := cfg.Retryable
	if retryable == nil {
		retryable = SkipPermanent
	}
	attempts := max(cfg.Attempts, 1)

	var err error
	for n := 1; ; n++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if n == attempts || !retryable(err) {
			return err
		}

		timer := time.NewTimer(cfg.wait(n))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// wait returns the pause after the n-th failed try (n starts at 1).
func (c Config) wait(n int) time.Duration {
	growth := c.Growth
	if growth < 1 {
		growth = 1
	}
	d := float64(c.FirstWait) * math.Pow(growth, float64(n-1))
	if c.Jitter > 0 {
		d += rand.Float64() * d * c.Jitter
	}
	if c.MaxWait > 0 && d > float64(c.MaxWait) {
		return c.MaxWait
	}
	return time.Duration(d)
}

// Permanent marks a failure that another try cannot fix, such as rejected
// credentials.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so Do stops at once. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err was marked with NewPermanent.
func IsPermanent(err error) bool {
	var p *Permanent
	return errors.As(err, &p)
}

// SkipPermanent is the default Retryable predicate.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
