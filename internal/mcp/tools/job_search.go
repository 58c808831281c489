package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

const defaultSearchLimit = 20

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Region    string  `json:"region" jsonschema:"Market to search: uk or us"`
	Role      string  `json:"role,omitempty" jsonschema:"Keyword matched against title, description and organisation"`
	Location  string  `json:"location,omitempty" jsonschema:"Substring of the job location"`
	Category  string  `json:"category,omitempty" jsonschema:"Job title category matched case-insensitively, or All"`
	SalaryMin float64 `json:"salary_min,omitempty" jsonschema:"Minimum annualized salary"`
	SalaryMax float64 `json:"salary_max,omitempty" jsonschema:"Maximum annualized salary, 0 for no limit"`
	Sort      string  `json:"sort,omitempty" jsonschema:"relevance, newest, closing-soon, salary-high or salary-low"`
	Limit     int     `json:"limit,omitempty" jsonschema:"Maximum jobs returned, default 20"`
}

// JobSearchResult is the structured response of job_search
type JobSearchResult struct {
	Region      domain.Region      `json:"region"`
	State       domain.SearchState `json:"state"`
	Matches     int                `json:"matches"`
	Total       int                `json:"total"`
	Jobs        []domain.Job       `json:"jobs"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type jobSearchTool struct {
	service job.Service
	logger  *logging.Logger
}

// WithJobSearch registers the job_search tool
func WithJobSearch(service job.Service) Option {
	return func(reg *registry) {
		if service == nil {
			reg.logger.Warn("job_search not registered: job service missing")
			return
		}
		handler := jobSearchTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Search the region's healthcare job catalog with the same filters and sort orders as the website",
		}, handler.handle)
		reg.add("job_search")
	}
}

func (t jobSearchTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &JobSearchParams{}
	}

	region, err := parseRegion(params.Region)
	if err != nil {
		return nil, nil, err
	}

	state := domain.SearchState{
		Role:      params.Role,
		Location:  params.Location,
		Category:  params.Category,
		SalaryMin: max(params.SalaryMin, 0),
		SalaryMax: max(params.SalaryMax, 0),
		Sort:      domain.ParseSortKey(params.Sort),
	}

	res, err := t.service.Search(ctx, region, state)
	if err != nil {
		t.logger.Error("job_search failed", "region", region, "err", err)
		return nil, nil, fmt.Errorf("search %s: %w", region, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	jobs := res.Jobs
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	result := JobSearchResult{
		Region:      res.Region,
		State:       res.State,
		Matches:     len(res.Jobs),
		Total:       res.Total,
		Jobs:        jobs,
		GeneratedAt: res.GeneratedAt,
	}

	t.logger.Info("job_search completed", "region", region, "role", state.Role, "matches", result.Matches)

	lines := make([]string, 0, len(jobs))
	for _, j := range jobs {
		lines = append(lines, fmt.Sprintf("%s: %s, %s (%s, closes %s)", j.ID, j.Title, j.Organisation, j.Salary, j.ClosingDate))
	}
	header := fmt.Sprintf("%d of %d %s job(s) match", result.Matches, result.Total, region)
	return textResult(summary("job_search", header, lines)), result, nil
}
