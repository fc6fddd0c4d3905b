package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/maqala/maqala/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTemporary = errors.New("temporary error")

func fastRetryOptions() utils.RetryOptions {
	return utils.RetryOptions{
		MaxElapsedTime:  time.Second,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxRetries:      3,
	}
}

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	result, err := utils.WithRetry(context.Background(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errTemporary
		}
		return 42, nil
	}, fastRetryOptions())

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustsRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := utils.WithRetry(context.Background(), func() (int, error) {
		calls++
		return 0, errTemporary
	}, fastRetryOptions())

	require.ErrorIs(t, err, errTemporary)
	assert.Equal(t, 4, calls)
}

func TestWithRetryStopsOnPermanent(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := utils.WithRetry(context.Background(), func() (string, error) {
		calls++
		return "", backoff.Permanent(errTemporary)
	}, fastRetryOptions())

	require.ErrorIs(t, err, errTemporary)
	assert.Equal(t, 1, calls)
}

func TestWithRetryRespectsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := utils.WithRetry(ctx, func() (int, error) {
		return 0, errTemporary
	}, fastRetryOptions())

	require.Error(t, err)
}
