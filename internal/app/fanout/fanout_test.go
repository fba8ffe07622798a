package fanout_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aladdinnow/forms-service/internal/app/fanout"
)

var errBlank = errors.New("blank field")

func upper(_ context.Context, s string) (string, error) {
	if s == "" {
		return "", errBlank
	}
	return strings.ToUpper(s), nil
}

func TestRun_OutcomesFollowInputOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		items   []string
		want    []fanout.Result[string]
	}{
		{
			name:    "empty",
			workers: 4,
			items:   nil,
			want:    []fanout.Result[string]{},
		},
		{
			name:    "all succeed",
			workers: 2,
			items:   []string{"email", "phone", "password"},
			want:    []fanout.Result[string]{{Value: "EMAIL"}, {Value: "PHONE"}, {Value: "PASSWORD"}},
		},
		{
			name:    "one failure leaves the rest",
			workers: 3,
			items:   []string{"email", "", "phone"},
			want:    []fanout.Result[string]{{Value: "EMAIL"}, {Err: errBlank}, {Value: "PHONE"}},
		},
		{
			name:    "more workers than items",
			workers: 100,
			items:   []string{"email"},
			want:    []fanout.Result[string]{{Value: "EMAIL"}},
		},
		{
			name:    "non-positive workers",
			workers: -1,
			items:   []string{"email", "phone"},
			want:    []fanout.Result[string]{{Value: "EMAIL"}, {Value: "PHONE"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fanout.Run(context.Background(), tt.workers, tt.items, upper)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_SlowItemsKeepTheirSlot(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond, 0}

	got := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range got {
		assert.NoError(t, r.Err)
		assert.Equal(t, delays[i], r.Value, "results[%d]", i)
	}
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 3} {
		t.Run(strconv.Itoa(workers), func(t *testing.T) {
			t.Parallel()

			var active, peak atomic.Int32
			items := make([]int, 12)

			fanout.Run(context.Background(), workers, items, func(context.Context, int) (int, error) {
				n := active.Add(1)
				defer active.Add(-1)
				for p := peak.Load(); n > p && !peak.CompareAndSwap(p, n); p = peak.Load() {
				}
				time.Sleep(5 * time.Millisecond)
				return 0, nil
			})

			assert.LessOrEqual(t, peak.Load(), int32(max(workers, 1)))
		})
	}
}

func TestRun_CancelSkipsPendingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	got := fanout.Run(ctx, 1, []string{"email", "phone", "password"}, func(ctx context.Context, s string) (string, error) {
		calls.Add(1)
		cancel()
		return upper(ctx, s)
	})

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "EMAIL", got[0].Value)
	assert.ErrorIs(t, got[1].Err, context.Canceled)
	assert.ErrorIs(t, got[2].Err, context.Canceled)
}

func TestRun_AlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := fanout.Run(ctx, 2, []string{"email", "phone"}, func(context.Context, string) (string, error) {
		t.Error("fn called after cancellation")
		return "", nil
	})

	for _, r := range got {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
