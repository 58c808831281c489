package graph

import (
	"context"
	"fmt"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	jobdomain "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

// lister describes the subset of the Neo4j dataset repository used by the provider
type lister interface {
	ListRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error)
}

// Provider implements job.DatasetSource over a graph database listing
type Provider struct {
	repo lister
}

// NewProvider builds a graph provider
func NewProvider(repo lister) (*Provider, error) {
	if repo == nil {
		return nil, fmt.Errorf("graph provider: repository is required")
	}
	return &Provider{repo: repo}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "graph"
}

// FetchRaw returns the region's listing in stored order
func (p *Provider) FetchRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error) {
	return p.repo.ListRaw(ctx, region)
}

var _ jobdomain.DatasetSource = (*Provider)(nil)
