package document

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	jobdomain "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
)

// Provider reads regional dataset documents named <region>.json from a filesystem
type Provider struct {
	fsys fs.FS
}

// NewProvider builds a document provider over fsys
func NewProvider(fsys fs.FS) (*Provider, error) {
	if fsys == nil {
		return nil, fmt.Errorf("document provider: filesystem is required")
	}
	return &Provider{fsys: fsys}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "document"
}

// FetchRaw reads and decodes the region's document
func (p *Provider) FetchRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(p.fsys, FileName(region))
	if err != nil {
		return nil, fmt.Errorf("document provider: read %s: %w", FileName(region), err)
	}

	return jobdomain.DecodeDocument(data)
}

// FileName is the document name for region
func FileName(region domain.Region) string {
	return string(region) + ".json"
}

var _ jobdomain.DatasetSource = (*Provider)(nil)
