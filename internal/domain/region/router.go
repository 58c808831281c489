package region

import (
	"context"
	"strings"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// Router produces region-prefixed paths for one resolved region.
// Every internal link is built through ToRegionPath.
type Router struct {
	region domain.Region
}

// NewRouter binds a Router to region
func NewRouter(region domain.Region) Router {
	return Router{region: region}
}

// Region returns the active region
func (r Router) Region() domain.Region {
	return r.region
}

// ToRegionPath prefixes path with the active region segment.
// A leading known region segment is replaced rather than stacked, so the
// function is idempotent. Query and fragment are kept. Absolute URLs and
// non-http schemes are returned unchanged.
func (r Router) ToRegionPath(path string) string {
	if isExternal(path) {
		return path
	}

	segment, rest := firstSegment(path)
	if _, ok := domain.ParseRegion(segment); ok {
		path = rest
	} else if segment != "" {
		path = "/" + segment + rest
	} else {
		path = rest
	}

	prefix := "/" + string(r.region)
	switch {
	case path == "" || path == "/":
		return prefix
	case strings.HasPrefix(path, "?") || strings.HasPrefix(path, "#"):
		return prefix + path
	case strings.HasPrefix(path, "/?") || strings.HasPrefix(path, "/#"):
		return prefix + path[1:]
	default:
		return prefix + path
	}
}

// SwitchTo returns a Router for another region, e.g. for a region switcher link
func (r Router) SwitchTo(region domain.Region) Router {
	return Router{region: region}
}

func isExternal(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "//") ||
		strings.Contains(lower, "://") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:")
}

type routerKey struct{}

// WithRouter stores r in ctx for downstream handlers and views
func WithRouter(ctx context.Context, r Router) context.Context {
	return context.WithValue(ctx, routerKey{}, r)
}

// FromContext returns the Router stored by WithRouter
func FromContext(ctx context.Context) (Router, bool) {
	r, ok := ctx.Value(routerKey{}).(Router)
	return r, ok
}
