package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chzzmarket/market-api/internal/metrics"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

func TestSweepImageDeletions(t *testing.T) {
	t.Parallel()

	c, deps := newTestCatalog(t, WithWorkerID("w1"), WithSweepBatchSize(3), WithStaleClaimAfter(time.Minute))

	deps.store.EXPECT().RecoverStaleImageDeletions(mock.Anything, time.Minute).Return(1, nil).Once()
	deps.store.EXPECT().DequeueImageDeletions(mock.Anything, "w1", 3).Return([]domain.ImageDeletion{
		{ID: 1, ObjectKey: "products/a.jpg"},
		{ID: 2, ObjectKey: "products/b.jpg", Attempts: 2},
	}, nil).Once()
	deps.images.EXPECT().Delete(mock.Anything, "products/a.jpg").Return(nil).Once()
	deps.images.EXPECT().Delete(mock.Anything, "products/b.jpg").Return(errors.New("access denied")).Once()
	deps.store.EXPECT().CompleteImageDeletion(mock.Anything, int64(1), "").Return(nil).Once()
	deps.store.EXPECT().CompleteImageDeletion(mock.Anything, int64(2), "access denied").Return(nil).Once()
	deps.store.EXPECT().CountPendingImageDeletions(mock.Anything).Return(1, nil).Once()

	res, err := c.SweepImageDeletions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SweepResult{Recovered: 1, Claimed: 2, Deleted: 1, Failed: 1}, res)

	spans := deps.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "catalog.SweepImageDeletions", spans[0].Name())
}

func TestSweepImageDeletions_EmptyQueue(t *testing.T) {
	t.Parallel()

	c, deps := newTestCatalog(t)

	deps.store.EXPECT().RecoverStaleImageDeletions(mock.Anything, mock.Anything).Return(0, nil).Once()
	deps.store.EXPECT().DequeueImageDeletions(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	deps.store.EXPECT().CountPendingImageDeletions(mock.Anything).Return(0, nil).Once()

	res, err := c.SweepImageDeletions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SweepResult{}, res)
}

func TestSweepImageDeletions_DequeueError(t *testing.T) {
	t.Parallel()

	c, deps := newTestCatalog(t)

	deps.store.EXPECT().RecoverStaleImageDeletions(mock.Anything, mock.Anything).Return(0, nil).Once()
	deps.store.EXPECT().DequeueImageDeletions(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("deadlock")).Once()

	_, err := c.SweepImageDeletions(context.Background())
	assert.Error(t, err)
}

func TestSweepImageDeletions_CanceledWhileThrottled(t *testing.T) {
	t.Parallel()

	c, deps := newTestCatalog(t, WithDeleteRate(0.001, 1))

	deps.store.EXPECT().RecoverStaleImageDeletions(mock.Anything, mock.Anything).Return(0, nil).Once()
	deps.store.EXPECT().DequeueImageDeletions(mock.Anything, mock.Anything, mock.Anything).Return([]domain.ImageDeletion{
		{ID: 1, ObjectKey: "products/a.jpg"},
		{ID: 2, ObjectKey: "products/b.jpg"},
	}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	deps.images.EXPECT().Delete(mock.Anything, "products/a.jpg").
		RunAndReturn(func(context.Context, string) error {
			cancel()
			return nil
		}).Once()
	deps.store.EXPECT().CompleteImageDeletion(mock.Anything, int64(1), "").Return(nil).Once()

	res, err := c.SweepImageDeletions(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, res.Deleted)
}

// Not parallel: asserts on the shared queue depth gauge.
func TestSweepImageDeletions_SetsQueueDepth(t *testing.T) {
	c, deps := newTestCatalog(t)

	deps.store.EXPECT().RecoverStaleImageDeletions(mock.Anything, mock.Anything).Return(0, nil).Once()
	deps.store.EXPECT().DequeueImageDeletions(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	deps.store.EXPECT().CountPendingImageDeletions(mock.Anything).Return(17, nil).Once()

	_, err := c.SweepImageDeletions(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 17, ptestutil.ToFloat64(metrics.ImageDeletionQueueDepth), 0.001)
}
