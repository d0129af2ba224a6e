package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/ingest"
	"github.com/lvyanru/startupradar/internal/metrics"
)

// LoadFunc builds a dataset from a source; it must not fail, a broken
// source yields an empty dataset
type LoadFunc func(ctx context.Context, src ingest.Source) *entity.Dataset

// DatasetCache holds the dataset of one source for the life of the process.
//
// Concurrent callers that find the cache empty share a single load. A
// finished load is kept, even when it produced an empty dataset, until
// Invalidate is called.
type DatasetCache struct {
	src     ingest.Source
	load    LoadFunc
	timeout time.Duration
	logger  *slog.Logger

	group singleflight.Group

	mu   sync.RWMutex
	data *entity.Dataset
	gen  uint64 // bumped by Invalidate; a load from an older generation is not stored
}

// NewDatasetCache creates a cache. timeout bounds one load; zero means no bound.
func NewDatasetCache(src ingest.Source, load LoadFunc, timeout time.Duration, logger *slog.Logger) *DatasetCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetCache{
		src:     src,
		load:    load,
		timeout: timeout,
		logger:  logger,
	}
}

// Dataset returns the cached dataset or loads it. If ctx ends first the
// caller gets ctx.Err() while the load carries on for the other callers.
func (c *DatasetCache) Dataset(ctx context.Context) (*entity.Dataset, error) {
	if ds := c.cached(); ds != nil {
		return ds, nil
	}

	ch := c.group.DoChan(c.src.Identity(), func() (interface{}, error) {
		return c.loadOnce(ctx), nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			metrics.SharedLoads.Inc()
		}
		ds, ok := res.Val.(*entity.Dataset)
		if !ok {
			return nil, fmt.Errorf("unexpected dataset type %T", res.Val)
		}
		return ds, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops the cached dataset. A load in flight is not stored and
// the next Dataset call starts a fresh one.
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.gen++
	c.mu.Unlock()

	c.group.Forget(c.src.Identity())
	c.logger.Info("dataset cache invalidated", "source", c.src.Identity())
}

// Loaded reports whether a dataset is cached
func (c *DatasetCache) Loaded() bool {
	return c.cached() != nil
}

func (c *DatasetCache) cached() *entity.Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

func (c *DatasetCache) loadOnce(ctx context.Context) *entity.Dataset {
	c.mu.RLock()
	gen := c.gen
	if c.data != nil {
		ds := c.data
		c.mu.RUnlock()
		return ds
	}
	c.mu.RUnlock()

	// detached from the first caller so its cancellation does not fail the others
	loadCtx := context.WithoutCancel(ctx)
	var cancel context.CancelFunc
	if c.timeout > 0 {
		loadCtx, cancel = context.WithTimeout(loadCtx, c.timeout)
	} else {
		loadCtx, cancel = context.WithCancel(loadCtx)
	}
	defer cancel()

	ds := c.load(loadCtx, c.src)

	c.mu.Lock()
	if c.gen == gen {
		c.data = ds
	}
	c.mu.Unlock()

	metrics.DatasetEntities.WithLabelValues("startups").Set(float64(len(ds.Startups)))
	metrics.DatasetEntities.WithLabelValues("funding_rounds").Set(float64(len(ds.FundingRounds)))
	metrics.DatasetEntities.WithLabelValues("investors").Set(float64(len(ds.Investors)))

	return ds
}
