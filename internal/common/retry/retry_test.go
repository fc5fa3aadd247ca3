package retry

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	xlog "bitbucket.org/Amartha/go-x/log"
	"github.com/stretchr/testify/assert"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/config"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestRetryer() Retryer {
	return NewExponentialBackOff(&config.ExponentialBackOffConfig{
		MaxBackoffTime:    time.Second,
		BackoffMultiplier: 1.1,
		MaxRetries:        3,
	})
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	r := newTestRetryer()

	attempts := 0
	err := r.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsRetryBudget(t *testing.T) {
	r := newTestRetryer()

	wantErr := errors.New("still down")
	attempts := 0
	err := r.Do(context.Background(), func() error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	// initial attempt plus MaxRetries
	assert.Equal(t, 4, attempts)
}

func TestDo_PermanentErrorShortCircuits(t *testing.T) {
	r := newTestRetryer()

	wantErr := errors.New("invalid credentials")
	attempts := 0
	err := r.Do(context.Background(), func() error {
		attempts++
		return r.StopRetryWithErr(wantErr)
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
}

func TestDo_ContextCancelled(t *testing.T) {
	r := NewExponentialBackOff(&config.ExponentialBackOffConfig{
		MaxBackoffTime:    time.Minute,
		BackoffMultiplier: 2,
		MaxRetries:        100,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Do(ctx, func() error {
		return errors.New("transient")
	})

	assert.Error(t, err)
}

func TestNewExponentialBackOff_Defaults(t *testing.T) {
	cfg := &config.ExponentialBackOffConfig{MaxBackoffTime: -1}
	NewExponentialBackOff(cfg)

	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.NotZero(t, cfg.BackoffMultiplier)
	assert.NotZero(t, cfg.MaxBackoffTime)
}
