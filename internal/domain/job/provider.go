package job

import (
	"context"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// DatasetSource supplies a region's upstream records (document store, HTTP feed, Adzuna, Neo4j)
type DatasetSource interface {
	// e.g. "document" or "adzuna"
	Name() string

	// FetchRaw returns the region's records in upstream order
	FetchRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error)
}

// SupplementSource supplies hand-authored, already-canonical jobs for a region
type SupplementSource interface {
	Name() string

	FetchStatic(ctx context.Context, region domain.Region) ([]domain.Job, error)
}
