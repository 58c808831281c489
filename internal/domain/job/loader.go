package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

const defaultLoadTimeout = 30 * time.Second

// LoaderOption configures Loader
type LoaderOption func(*Loader)

// WithLoadTimeout bounds a single catalog load
func WithLoadTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLoaderLogger sets the logger used for load and quarantine reports
func WithLoaderLogger(logger *logging.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader resolves, loads and memoizes the per-region catalogs into a Store
type Loader struct {
	store      *Store
	dataset    DatasetSource
	supplement SupplementSource
	logger     *logging.Logger
	timeout    time.Duration

	inflight singleflight.Group
}

// NewLoader builds a Loader. supplement may be nil when a deployment has no curated records.
func NewLoader(store *Store, dataset DatasetSource, supplement SupplementSource, opts ...LoaderOption) (*Loader, error) {
	if store == nil {
		return nil, fmt.Errorf("job.Loader: store is required")
	}
	if dataset == nil {
		return nil, fmt.Errorf("job.Loader: dataset source is required")
	}

	l := &Loader{
		store:      store,
		dataset:    dataset,
		supplement: supplement,
		logger:     logging.NewNop(),
		timeout:    defaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Load returns the region's catalog, fetching it on first demand.
// Concurrent first calls share one in-flight load. The load is detached from
// ctx: a caller that gives up gets ctx.Err() while the load still completes
// and fills the store. Failed loads are not cached.
func (l *Loader) Load(ctx context.Context, region domain.Region) ([]domain.Job, error) {
	r, ok := domain.ParseRegion(string(region))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	region = r

	if jobs, ok := l.store.Get(region); ok {
		return jobs, nil
	}

	ch := l.inflight.DoChan(string(region), func() (any, error) {
		if jobs, ok := l.store.Get(region); ok {
			return jobs, nil
		}

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		jobs, err := l.fetch(loadCtx, region)
		if err != nil {
			return nil, err
		}
		return l.store.Put(region, jobs), nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Job), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Peek returns the cached catalog without blocking; empty when not yet loaded
func (l *Loader) Peek(region domain.Region) []domain.Job {
	if jobs, ok := l.store.Get(region); ok {
		return jobs
	}
	return []domain.Job{}
}

// Warm loads the given regions, reporting every failure
func (l *Loader) Warm(ctx context.Context, regions ...domain.Region) error {
	var errs []error
	for _, r := range regions {
		if _, err := l.Load(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Loader) fetch(ctx context.Context, region domain.Region) ([]domain.Job, error) {
	started := time.Now()

	var (
		raws   []domain.RawRecord
		static []domain.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := l.dataset.FetchRaw(gctx, region)
		if err != nil {
			return fmt.Errorf("%w: %s dataset for %s: %w", ErrCatalogUnavailable, l.dataset.Name(), region, err)
		}
		raws = records
		return nil
	})
	if l.supplement != nil {
		g.Go(func() error {
			jobs, err := l.supplement.FetchStatic(gctx, region)
			if err != nil {
				return fmt.Errorf("%w: %s supplement for %s: %w", ErrCatalogUnavailable, l.supplement.Name(), region, err)
			}
			static = jobs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.logger.Warn("catalog load failed", "region", region, "err", err)
		return nil, err
	}

	dynamic, rejected := NormalizeAll(raws)
	for _, r := range rejected {
		l.logger.Warn("quarantined upstream record",
			"region", region,
			"source", l.dataset.Name(),
			"index", r.Index,
			"id", r.ID,
			"err", r.Err,
		)
	}

	catalog := make([]domain.Job, 0, len(dynamic)+len(static))
	catalog = append(catalog, dynamic...)
	for _, j := range static {
		catalog = append(catalog, completeStatic(j))
	}

	l.logger.Info("catalog loaded",
		"region", region,
		"dynamic", len(dynamic),
		"static", len(static),
		"rejected", len(rejected),
		"duration", time.Since(started),
	)

	return catalog, nil
}

// completeStatic fills nil lists so curated jobs match the normalized shape
func completeStatic(j domain.Job) domain.Job {
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
	if j.PostedDate == "" {
		j.PostedDate = domain.OpenDate
	}
	if j.ClosingDate == "" {
		j.ClosingDate = domain.OpenDate
	}
	return j
}
