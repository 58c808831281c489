package adzuna

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/jobs/us/search/1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("category") != "healthcare-nursing-jobs" || q.Get("what") != "nurse" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 2, "results": [
			{"id": "42", "title": " ICU Nurse ", "company": {"display_name": "HCA"},
			 "location": {"display_name": "Austin, Texas", "area": ["US", "Texas", "Austin"]},
			 "created": "2024-03-11T08:00:00Z", "contract_time": "full_time",
			 "category": {"label": "Healthcare & Nursing Jobs", "tag": "healthcare-nursing-jobs"},
			 "salary_min": 85000, "salary_max": 95000},
			{"title": "no id"}
		]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	jobs, err := c.SearchJobs(context.Background(), "nurse", SearchParams{Country: "US", Category: "healthcare-nursing-jobs"})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1 (posting without id skipped)", len(jobs))
	}

	j := jobs[0]
	if j.Title != "ICU Nurse" || j.CompanyName != "HCA" || j.Category != "Healthcare & Nursing Jobs" {
		t.Errorf("job = %+v", j)
	}
	if j.PostedAt.IsZero() || j.SalaryMin != 85000 {
		t.Errorf("posted=%v salary_min=%v", j.PostedAt, j.SalaryMin)
	}
}

func TestSearchJobsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	if _, err := c.SearchJobs(context.Background(), "nurse", SearchParams{}); err == nil {
		t.Error("expected error for 401")
	}
}

func TestBuildSearchURLRequiresQueryOrCategory(t *testing.T) {
	c, _ := NewClient(Config{AppID: "id", AppKey: "key"})
	if _, err := c.buildSearchURL("", SearchParams{}); err == nil {
		t.Error("expected error without query or category")
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{AppID: "id"}); err == nil {
		t.Error("expected error without app key")
	}
}
