package tools

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
	logger *logging.Logger
	names  []string
}

func (r *registry) add(name string) {
	r.names = append(r.names, name)
}

// Register applies the provided tool options and returns the names it registered
func Register(server *sdkmcp.Server, logger *logging.Logger, opts ...Option) []string {
	if logger == nil {
		logger = logging.NewNop()
	}
	reg := &registry{server: server, logger: logger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
	return reg.names
}

func parseRegion(s string) (domain.Region, error) {
	r, ok := domain.ParseRegion(s)
	if !ok {
		return "", fmt.Errorf("unknown region %q (want one of %v)", s, domain.Regions())
	}
	return r, nil
}

// regionsOrAll returns the named region, or every supported region when s is empty
func regionsOrAll(s string) ([]domain.Region, error) {
	if s == "" {
		return domain.Regions(), nil
	}
	r, err := parseRegion(s)
	if err != nil {
		return nil, err
	}
	return []domain.Region{r}, nil
}
