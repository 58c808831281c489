package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/region"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/mcp/tools"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// StreamPath is where the streamable HTTP transport is mounted
const StreamPath = "/mcp/stream"

const (
	serverName    = "flexzo-jobs"
	serverVersion = "0.1.0"
)

// Resources are the services exposed as MCP tools
type Resources struct {
	JobService job.Service
	Locale     *locale.Engine
	Resolver   *region.Resolver
}

// NewServer builds an MCP server with every job discovery tool registered
func NewServer(res Resources, logger *logging.Logger) *sdkmcp.Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("mcp")

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	names := tools.Register(server, logger,
		tools.WithJobSearch(res.JobService),
		tools.WithCatalogStatus(res.JobService),
		tools.WithLocaleTranslate(res.Locale),
		tools.WithRegionPath(res.Resolver),
	)
	logger.Info("MCP tools registered", "tools", names)

	return server
}

// Handler serves server over the streamable HTTP transport
func Handler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
