package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/metrics"
)

func TestGroupLocks(t *testing.T) {
	locks := NewGroupLocks()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		overlap atomic.Bool
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("group-1")
			defer unlock()
			if active.Add(1) > 1 {
				overlap.Store(true)
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load(), "two writers held the same group lock")
	assert.Equal(t, 0, locks.size())
}

func TestGroupLocks_IndependentGroups(t *testing.T) {
	locks := NewGroupLocks()

	unlockA := locks.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on group b blocked behind group a")
	}
	assert.Equal(t, 1, locks.size())
	unlockA()
	assert.Equal(t, 0, locks.size())
}

func TestBalanceCache(t *testing.T) {
	m := metrics.New()
	cache := NewBalanceCache(4, time.Minute, m)
	ctx := context.Background()

	var loads atomic.Int32
	load := func(context.Context) (*GroupBalances, error) {
		loads.Add(1)
		return &GroupBalances{Balances: map[string]calculator.Balance{"a": {}}}, nil
	}

	first, err := cache.Get(ctx, "g1", load)
	require.NoError(t, err)
	second, err := cache.Get(ctx, "g1", load)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), loads.Load())

	cache.Invalidate("g1")
	_, err = cache.Get(ctx, "g1", load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BalanceCacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BalanceCacheMisses))
}

func TestBalanceCache_ErrorsAreNotCached(t *testing.T) {
	cache := NewBalanceCache(4, time.Minute, metrics.New())
	ctx := context.Background()

	_, err := cache.Get(ctx, "g1", func(context.Context) (*GroupBalances, error) {
		return nil, apperrors.ErrNotFound
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := cache.Get(ctx, "g1", func(context.Context) (*GroupBalances, error) {
		return &GroupBalances{}, nil
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestBalanceCache_InvalidateDuringLoad(t *testing.T) {
	cache := NewBalanceCache(4, time.Minute, metrics.New())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	stale := &GroupBalances{}
	go func() {
		_, _ = cache.Get(ctx, "g1", func(context.Context) (*GroupBalances, error) {
			close(started)
			<-release
			return stale, nil
		})
	}()

	<-started
	cache.Invalidate("g1")
	close(release)

	// A load started before Invalidate must not be shared or stored.
	fresh := &GroupBalances{}
	got, err := cache.Get(ctx, "g1", func(context.Context) (*GroupBalances, error) {
		return fresh, nil
	})
	require.NoError(t, err)
	assert.Same(t, fresh, got)

	got, err = cache.Get(ctx, "g1", func(context.Context) (*GroupBalances, error) {
		return &GroupBalances{}, nil
	})
	require.NoError(t, err)
	assert.Same(t, fresh, got)
}

func TestBalanceCache_CanceledCallerDoesNotFailOthers(t *testing.T) {
	cache := NewBalanceCache(4, time.Minute, metrics.New())

	var loads atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (*GroupBalances, error) {
		loads.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &GroupBalances{}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := cache.Get(ctx, "g1", load)
		first <- err
	}()
	<-started

	second := make(chan error, 1)
	go func() {
		_, err := cache.Get(context.Background(), "g1", load)
		second <- err
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)
	close(release)
	require.NoError(t, <-second)
	assert.Equal(t, int32(1), loads.Load())

	_, err := cache.Get(context.Background(), "g1", load)
	require.NoError(t, err)
	assert.Equal(t, int32(1), loads.Load())
}

func TestConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"validation", fmt.Errorf("%w: bad title", apperrors.ErrValidation), connect.CodeInvalidArgument},
		{"not found", fmt.Errorf("%w: group x", apperrors.ErrNotFound), connect.CodeNotFound},
		{"conflict", fmt.Errorf("%w: participant in use", apperrors.ErrConflict), connect.CodeFailedPrecondition},
		{"integrity wins over validation", dataIntegrity("e1", apperrors.ErrValidation), connect.CodeDataLoss},
		{"invalid token", auth.ErrInvalidToken, connect.CodeUnauthenticated},
		{"canceled", context.Canceled, connect.CodeCanceled},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), connect.CodeDeadlineExceeded},
		{"unknown", errors.New("disk on fire"), connect.CodeInternal},
		{"already a connect error", connect.NewError(connect.CodeAborted, errors.New("x")), connect.CodeAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, connectError(tt.err).Code())
		})
	}
}
