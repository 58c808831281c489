package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// CatalogStatusParams defines the arguments for the catalog_status tool
type CatalogStatusParams struct {
	Region string `json:"region,omitempty" jsonschema:"uk or us; all regions when empty"`
	Load   bool   `json:"load,omitempty" jsonschema:"Load catalogs that are not cached yet"`
}

// CatalogStatus describes one region's cached catalog
type CatalogStatus struct {
	Region domain.Region `json:"region"`
	Loaded bool          `json:"loaded"`
	Jobs   int           `json:"jobs"`
	Error  string        `json:"error,omitempty"`
}

// CatalogStatusResult is the structured response of catalog_status
type CatalogStatusResult struct {
	Regions []CatalogStatus `json:"regions"`
}

type catalogStatusTool struct {
	service job.Service
	logger  *logging.Logger
}

// WithCatalogStatus registers the catalog_status tool
func WithCatalogStatus(service job.Service) Option {
	return func(reg *registry) {
		if service == nil {
			reg.logger.Warn("catalog_status not registered: job service missing")
			return
		}
		handler := catalogStatusTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "catalog_status",
			Description: "Report which regional job catalogs are cached, optionally loading them",
		}, handler.handle)
		reg.add("catalog_status")
	}
}

func (t catalogStatusTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *CatalogStatusParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &CatalogStatusParams{}
	}

	regions, err := regionsOrAll(params.Region)
	if err != nil {
		return nil, nil, err
	}

	result := CatalogStatusResult{Regions: make([]CatalogStatus, 0, len(regions))}
	lines := make([]string, 0, len(regions))
	for _, r := range regions {
		st := CatalogStatus{Region: r}
		if params.Load {
			if _, err := t.service.Search(ctx, r, domain.SearchState{}); err != nil {
				t.logger.Warn("catalog_status load failed", "region", r, "err", err)
				st.Error = err.Error()
			}
		}
		cached := t.service.Peek(r)
		st.Jobs = len(cached)
		st.Loaded = st.Jobs > 0

		result.Regions = append(result.Regions, st)
		line := fmt.Sprintf("%s: loaded=%t jobs=%d", r, st.Loaded, st.Jobs)
		if st.Error != "" {
			line += " error=" + st.Error
		}
		lines = append(lines, line)
	}

	return textResult(summary("catalog_status", "catalog cache", lines)), result, nil
}
