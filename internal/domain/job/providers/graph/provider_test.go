package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/graph"
)

type fakeRepo struct {
	records map[domain.Region][]domain.RawRecord
	err     error
	calls   int
}

func (f *fakeRepo) ListRaw(_ context.Context, region domain.Region) ([]domain.RawRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records[region], nil
}

func TestNewProvider_RequiresRepository(t *testing.T) {
	if _, err := graph.NewProvider(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

func TestProvider_FeedsLoader(t *testing.T) {
	repo := &fakeRepo{records: map[domain.Region][]domain.RawRecord{
		domain.RegionUK: {
			{ID: "g-1", Title: "Theatre Nurse", Organisation: "Leeds NHS Trust"},
			{ID: "g-2", Organisation: "missing title"},
			{ID: "g-3", Title: "Ward Clerk", Organisation: "York NHS Trust"},
		},
	}}
	p, err := graph.NewProvider(repo)
	if err != nil {
		t.Fatal(err)
	}

	loader, err := job.NewLoader(job.NewStore(), p, nil)
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := loader.Load(context.Background(), domain.RegionUK)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(jobs) != 2 || jobs[0].ID != "g-1" || jobs[1].ID != "g-3" {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestProvider_FailureIsRetryable(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	p, _ := graph.NewProvider(repo)
	loader, _ := job.NewLoader(job.NewStore(), p, nil)

	for i := 0; i < 2; i++ {
		if _, err := loader.Load(context.Background(), domain.RegionUS); !errors.Is(err, job.ErrCatalogUnavailable) {
			t.Fatalf("Load err = %v, want ErrCatalogUnavailable", err)
		}
	}
	if repo.calls != 2 {
		t.Errorf("calls = %d, failed load must not be cached", repo.calls)
	}
}
