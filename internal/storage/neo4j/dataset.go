package neo4j

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"

	pkgneo4j "github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/neo4j"
)

// DatasetRepository reads and seeds regional job records held in Neo4j as
// (:Job)-[:LISTED_IN]->(:Region {code}) with a per-region position.
type DatasetRepository struct {
	client *pkgneo4j.Client
}

// NewDatasetRepository creates a DatasetRepository with a Neo4j client
func NewDatasetRepository(client *pkgneo4j.Client) *DatasetRepository {
	return &DatasetRepository{
		client: client,
	}
}

// ListRaw returns the region's records in listing order
func (r *DatasetRepository) ListRaw(ctx context.Context, region domain.Region) ([]domain.RawRecord, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (j:Job)-[l:LISTED_IN]->(:Region {code: $region})
		RETURN j
		ORDER BY l.position ASC
	`

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"region": string(region)})
		if err != nil {
			return nil, err
		}

		out := make([]domain.RawRecord, 0)
		for res.Next(ctx) {
			val, ok := res.Record().Get("j")
			if !ok {
				continue
			}
			node, ok := val.(neo4j.Node)
			if !ok {
				continue
			}
			out = append(out, recordFromProps(node.Props))
		}
		return out, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: list %s jobs: %w", region, err)
	}

	return result.([]domain.RawRecord), nil
}

// ImportRaw replaces the region's listing with records, keeping their order
func (r *DatasetRepository) ImportRaw(ctx context.Context, region domain.Region, records []domain.RawRecord) error {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	unlist := `
		MERGE (reg:Region {code: $region})
		WITH reg
		OPTIONAL MATCH (:Job)-[l:LISTED_IN]->(reg)
		DELETE l
	`

	upsert := `
		MATCH (reg:Region {code: $region})
		UNWIND $jobs AS job
		MERGE (j:Job {id: job.id})
		SET j += job
		MERGE (j)-[l:LISTED_IN]->(reg)
		SET l.position = job.position
	`

	jobsData := make([]map[string]any, 0, len(records))
	for i, rec := range records {
		props := propsFromRecord(rec)
		props["position"] = i
		jobsData = append(jobsData, props)
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		params := map[string]any{"region": string(region)}
		if _, err := tx.Run(ctx, unlist, params); err != nil {
			return nil, err
		}

		params["jobs"] = jobsData
		result, err := tx.Run(ctx, upsert, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j: import %s jobs: %w", region, err)
	}

	return nil
}

func propsFromRecord(rec domain.RawRecord) map[string]any {
	props := map[string]any{
		"id":           rec.ID,
		"title":        rec.Title,
		"organisation": rec.Organisation,
	}
	set := func(key string, v *string) {
		if v != nil {
			props[key] = *v
		}
	}
	set("grade", rec.Grade)
	set("specialism", rec.Specialism)
	set("shift_pattern", rec.ShiftPattern)
	set("rate", rec.Rate)
	set("start_date", rec.StartDate)
	set("end_date", rec.EndDate)
	set("description", rec.Description)
	set("region", rec.Region)

	if rec.Responsibilities != nil {
		props["responsibilities"] = rec.Responsibilities
	}
	if rec.Requirements != nil {
		props["requirements"] = rec.Requirements
	}
	return props
}

func recordFromProps(props map[string]any) domain.RawRecord {
	return domain.RawRecord{
		ID:               stringProp(props, "id"),
		Title:            stringProp(props, "title"),
		Organisation:     stringProp(props, "organisation"),
		Grade:            optionalProp(props, "grade"),
		Specialism:       optionalProp(props, "specialism"),
		ShiftPattern:     optionalProp(props, "shift_pattern"),
		Rate:             optionalProp(props, "rate"),
		StartDate:        optionalProp(props, "start_date"),
		EndDate:          optionalProp(props, "end_date"),
		Description:      optionalProp(props, "description"),
		Responsibilities: listProp(props, "responsibilities"),
		Requirements:     listProp(props, "requirements"),
		Region:           optionalProp(props, "region"),
	}
}

func stringProp(props map[string]any, key string) string {
	if v := optionalProp(props, key); v != nil {
		return *v
	}
	return ""
}

// optionalProp stringifies scalar properties; absent and non-scalar values are nil
func optionalProp(props map[string]any, key string) *string {
	var s string
	switch v := props[key].(type) {
	case string:
		s = v
	case int64:
		s = fmt.Sprint(v)
	case float64:
		s = fmt.Sprint(v)
	case bool:
		s = fmt.Sprint(v)
	case neo4j.Date:
		s = v.Time().Format("2006-01-02")
	default:
		return nil
	}
	return &s
}

func listProp(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
