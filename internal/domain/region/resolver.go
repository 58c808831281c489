package region

import (
	"context"
	"strings"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// State of a navigation context's region
type State int

const (
	Unresolved State = iota
	Resolved
)

func (s State) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "unresolved"
}

// Resolution is the outcome of resolving one request path.
// Redirect is set only at the site root; NotFound is set for an
// unrecognized region segment, which leaves the state Unresolved.
type Resolution struct {
	State    State
	Region   domain.Region
	Redirect string
	NotFound bool
	Inferred bool
}

// ResolverOption configures Resolver
type ResolverOption func(*Resolver)

// WithFallback sets the region used when inference has no answer
func WithFallback(r domain.Region) ResolverOption {
	return func(res *Resolver) {
		if _, ok := domain.ParseRegion(string(r)); ok {
			res.fallback = r
		}
	}
}

// WithResolverLogger sets the logger
func WithResolverLogger(logger *logging.Logger) ResolverOption {
	return func(res *Resolver) {
		if logger != nil {
			res.logger = logger
		}
	}
}

// Resolver turns request paths into region resolutions
type Resolver struct {
	inferrer Inferrer
	fallback domain.Region
	logger   *logging.Logger
}

// NewResolver builds a Resolver; a nil inferrer always falls back
func NewResolver(inferrer Inferrer, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		inferrer: inferrer,
		fallback: domain.RegionUK,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fallback returns the region used when inference fails
func (r *Resolver) Fallback() domain.Region {
	return r.fallback
}

// Resolve maps path onto a Resolution. Inference runs only at the root.
func (r *Resolver) Resolve(ctx context.Context, path string, signals Signals) Resolution {
	segment, _ := firstSegment(path)
	if segment == "" {
		region, inferred := r.infer(ctx, signals)
		return Resolution{
			State:    Resolved,
			Region:   region,
			Redirect: "/" + string(region),
			Inferred: inferred,
		}
	}

	region, ok := domain.ParseRegion(segment)
	if !ok {
		return Resolution{State: Unresolved, NotFound: true}
	}
	return Resolution{State: Resolved, Region: region}
}

func (r *Resolver) infer(ctx context.Context, signals Signals) (domain.Region, bool) {
	if r.inferrer == nil {
		return r.fallback, false
	}

	region, err := r.inferrer.Infer(ctx, signals)
	if err != nil {
		r.logger.Debug("region inference fell back", "fallback", r.fallback, "err", err)
		return r.fallback, false
	}
	if _, ok := domain.ParseRegion(string(region)); !ok {
		r.logger.Warn("inferrer returned unsupported region", "region", region)
		return r.fallback, false
	}
	return region, true
}

// firstSegment splits "/uk/jobs?x" into "uk" and "/jobs?x"
func firstSegment(path string) (string, string) {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(p, "?#"); i >= 0 && !strings.Contains(p[:i], "/") {
		return p[:i], p[i:]
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i], p[i:]
	}
	return p, ""
}
