package job

import (
	"context"
	"fmt"
	"time"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// Service answers job discovery queries against the per-region catalogs
type Service interface {
	Search(ctx context.Context, region domain.Region, state domain.SearchState) (domain.SearchResult, error)
	Find(ctx context.Context, region domain.Region, id string) (domain.Job, error)
	Peek(region domain.Region) []domain.Job
}

// CatalogLoader is the subset of Loader used by the service
type CatalogLoader interface {
	Load(ctx context.Context, region domain.Region) ([]domain.Job, error)
	Peek(region domain.Region) []domain.Job
}

var _ CatalogLoader = (*Loader)(nil)

// Option configures Service
type Option func(*config)

type config struct {
	loader CatalogLoader
	logger *logging.Logger
	clock  func() time.Time
}

// WithLoader sets the catalog loader
func WithLoader(loader CatalogLoader) Option {
	return func(c *config) {
		c.loader = loader
	}
}

// WithLogger sets the service logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		logger: logging.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.loader == nil {
		return nil, fmt.Errorf("job.Service: catalog loader is required")
	}

	return &service{
		loader: cfg.loader,
		logger: cfg.logger,
		clock:  cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(loader *Loader, logger *logging.Logger) (Service, error) {
	return NewService(WithLoader(loader), WithLogger(logger))
}

type service struct {
	loader CatalogLoader
	logger *logging.Logger
	clock  func() time.Time
}

// Search loads the region's catalog on demand and evaluates state against it
func (s *service) Search(ctx context.Context, region domain.Region, state domain.SearchState) (domain.SearchResult, error) {
	catalog, err := s.loader.Load(ctx, region)
	if err != nil {
		return domain.SearchResult{}, err
	}

	jobs := Search(catalog, state)

	s.logger.Debug("search evaluated",
		"region", region,
		"role", state.Role,
		"location", state.Location,
		"category", state.Category,
		"sort", state.Sort,
		"matches", len(jobs),
		"catalog", len(catalog),
	)

	return domain.SearchResult{
		Region:      region,
		State:       state,
		Jobs:        jobs,
		Total:       len(catalog),
		GeneratedAt: s.clock(),
	}, nil
}

// Find returns the job with id from the region's catalog
func (s *service) Find(ctx context.Context, region domain.Region, id string) (domain.Job, error) {
	catalog, err := s.loader.Load(ctx, region)
	if err != nil {
		return domain.Job{}, err
	}

	for _, j := range catalog {
		if j.ID == id {
			return j, nil
		}
	}
	return domain.Job{}, fmt.Errorf("%w: %s/%s", ErrJobNotFound, region, id)
}

func (s *service) Peek(region domain.Region) []domain.Job {
	return s.loader.Peek(region)
}
