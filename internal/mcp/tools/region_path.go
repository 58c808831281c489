package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/region"
)

// RegionPathParams defines the arguments for the region_path tool
type RegionPathParams struct {
	Path   string `json:"path" jsonschema:"Site path such as /jobs?role=nurse or /uk/contact"`
	Region string `json:"region,omitempty" jsonschema:"Rewrite path for this region; resolve path as a request when empty"`
}

// RegionPathResult is the structured response of region_path
type RegionPathResult struct {
	Path     string        `json:"path"`
	Region   domain.Region `json:"region,omitempty"`
	State    string        `json:"state"`
	Result   string        `json:"result,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
	NotFound bool          `json:"not_found,omitempty"`
}

// WithRegionPath registers the region_path tool
func WithRegionPath(resolver *region.Resolver) Option {
	return func(reg *registry) {
		if resolver == nil {
			resolver = region.NewResolver(nil)
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "region_path",
			Description: "Rewrite a site path into a region, or show how the site resolves a request path",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *RegionPathParams) (*sdkmcp.CallToolResult, any, error) {
			return regionPath(ctx, resolver, params)
		})
		reg.add("region_path")
	}
}

func regionPath(ctx context.Context, resolver *region.Resolver, params *RegionPathParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &RegionPathParams{}
	}

	if params.Region != "" {
		r, err := parseRegion(params.Region)
		if err != nil {
			return nil, nil, err
		}
		out := region.NewRouter(r).ToRegionPath(params.Path)
		result := RegionPathResult{Path: params.Path, Region: r, State: region.Resolved.String(), Result: out}
		return textResult(fmt.Sprintf("[region_path] %s -> %s", params.Path, out)), result, nil
	}

	res := resolver.Resolve(ctx, params.Path, region.Signals{})
	result := RegionPathResult{
		Path:     params.Path,
		Region:   res.Region,
		State:    res.State.String(),
		Redirect: res.Redirect,
		NotFound: res.NotFound,
	}

	var msg string
	switch {
	case res.NotFound:
		msg = fmt.Sprintf("[region_path] %s -> not found", params.Path)
	case res.Redirect != "":
		msg = fmt.Sprintf("[region_path] %s -> redirect %s", params.Path, res.Redirect)
	default:
		msg = fmt.Sprintf("[region_path] %s -> %s", params.Path, res.Region)
	}
	return textResult(msg), result, nil
}
