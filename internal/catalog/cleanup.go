package catalog

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/chzzmarket/market-api/internal/metrics"
)

// SweepResult summarizes one pass over the image deletion queue.
type SweepResult struct {
	Recovered int
	Claimed   int
	Deleted   int
	Failed    int
}

// SweepImageDeletions claims a batch of queued image deletions and removes
// the objects from image storage under the delete rate limit. Failed rows
// keep their error text and are retried by a later sweep until they run
// out of attempts.
func (c *Catalog) SweepImageDeletions(ctx context.Context) (res SweepResult, err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.SweepImageDeletions")
	start := time.Now()
	defer func() {
		metrics.ImageSweepDuration.Observe(time.Since(start).Seconds())
		span.SetAttributes(
			attribute.Int("recovered", res.Recovered),
			attribute.Int("claimed", res.Claimed),
			attribute.Int("deleted", res.Deleted),
			attribute.Int("failed", res.Failed),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	res.Recovered, err = c.store.RecoverStaleImageDeletions(ctx, c.staleClaimAfter)
	if err != nil {
		return res, err
	}
	if res.Recovered > 0 {
		c.log.Warn("recovered stale image deletion claims", "count", res.Recovered)
	}

	batch, err := c.store.DequeueImageDeletions(ctx, c.workerID, c.sweepBatchSize)
	if err != nil {
		return res, err
	}
	res.Claimed = len(batch)

	for _, job := range batch {
		// Unprocessed claims are released by stale recovery.
		if err := c.deleteLimiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("waiting for delete limiter: %w", err)
		}

		var errText string
		if err := c.images.Delete(ctx, job.ObjectKey); err != nil {
			errText = err.Error()
			res.Failed++
			metrics.ImageDeletionsTotal.WithLabelValues("error").Inc()
			c.log.Warn("image deletion failed",
				"object_key", job.ObjectKey,
				"attempts", job.Attempts,
				"error", err,
			)
		} else {
			res.Deleted++
			metrics.ImageDeletionsTotal.WithLabelValues("ok").Inc()
		}

		if err := c.store.CompleteImageDeletion(ctx, job.ID, errText); err != nil {
			return res, err
		}
	}

	pending, err := c.store.CountPendingImageDeletions(ctx)
	if err != nil {
		c.log.Warn("counting pending image deletions failed", "error", err)
		return res, nil
	}
	metrics.ImageDeletionQueueDepth.Set(float64(pending))

	if res.Claimed > 0 {
		c.log.Info("image deletion sweep complete",
			"deleted", res.Deleted,
			"failed", res.Failed,
			"pending", pending,
		)
	}
	return res, nil
}
