package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRate struct {
	Code string `json:"code"`
	Rate string `json:"rate"`
}

func TestInMemoryClient(t *testing.T) {
	ctx := context.Background()

	c := NewInMemoryClient[cachedRate]()
	defer c.Close()

	_, err := c.Get(ctx, "rates:EUR")
	assert.ErrorIs(t, err, ErrNotExists)

	want := cachedRate{Code: "EUR", Rate: "0.92"}
	require.NoError(t, c.Set(ctx, "rates:EUR", want, time.Minute))

	got, err := c.Get(ctx, "rates:EUR")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, c.Delete(ctx, "rates:EUR"))
	_, err = c.Get(ctx, "rates:EUR")
	assert.ErrorIs(t, err, ErrNotExists)
}

func TestInMemoryClient_TTLExpiry(t *testing.T) {
	ctx := context.Background()

	c := NewInMemoryClient[cachedRate]()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "rates:USD", cachedRate{Code: "USD"}, time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "rates:USD")
	assert.ErrorIs(t, err, ErrNotExists)
}

func TestInMemoryClient_GetOrSet(t *testing.T) {
	ctx := context.Background()

	c := NewInMemoryClient[cachedRate]()
	defer c.Close()

	calls := 0
	opts := GetOrSetOpts[cachedRate]{
		Key: "rates:IDR",
		TTL: time.Minute,
		Callback: func() (cachedRate, error) {
			calls++
			return cachedRate{Code: "IDR", Rate: "16500"}, nil
		},
	}

	first, err := c.GetOrSet(ctx, opts)
	require.NoError(t, err)
	second, err := c.GetOrSet(ctx, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrSet(ctx, GetOrSetOpts[cachedRate]{Key: "x"})
	assert.ErrorIs(t, err, ErrCallbackNotProvided)
}

func TestRedisClient_GetSet(t *testing.T) {
	ctx := context.Background()

	db, mock := redismock.NewClientMock()
	c := NewRedisClient[cachedRate](db)

	mock.ExpectGet("rates:EUR").RedisNil()
	_, err := c.Get(ctx, "rates:EUR")
	assert.ErrorIs(t, err, ErrNotExists)

	mock.ExpectSet("rates:EUR", []byte(`{"code":"EUR","rate":"0.92"}`), time.Minute).SetVal("OK")
	err = c.Set(ctx, "rates:EUR", cachedRate{Code: "EUR", Rate: "0.92"}, time.Minute)
	assert.NoError(t, err)

	mock.ExpectGet("rates:EUR").SetVal(`{"code":"EUR","rate":"0.92"}`)
	got, err := c.Get(ctx, "rates:EUR")
	require.NoError(t, err)
	assert.Equal(t, cachedRate{Code: "EUR", Rate: "0.92"}, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}
