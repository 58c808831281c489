package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/remote"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/httpclient"
)

func testClient() httpclient.Config {
	return httpclient.Config{
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
		Timeout:      2 * time.Second,
	}
}

func TestProvider_FetchRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/datasets/us.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "us-1", "title": "RN", "organization": "Clinic"}]`))
	}))
	defer srv.Close()

	p, err := remote.NewProvider(srv.URL+"/datasets/", httpclient.New(testClient()))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	raws, err := p.FetchRaw(context.Background(), domain.RegionUS)
	if err != nil {
		t.Fatalf("FetchRaw: %v", err)
	}
	if len(raws) != 1 || raws[0].ID != "us-1" || raws[0].Organisation != "Clinic" {
		t.Errorf("raws = %+v", raws)
	}
}

func TestProvider_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"jobs": []}`))
	}))
	defer srv.Close()

	p, _ := remote.NewProvider(srv.URL, httpclient.New(testClient()))
	raws, err := p.FetchRaw(context.Background(), domain.RegionUK)
	if err != nil {
		t.Fatalf("FetchRaw: %v", err)
	}
	if len(raws) != 0 {
		t.Errorf("len(raws) = %d, want 0", len(raws))
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hit %d times, want 2", got)
	}
}

func TestProvider_NotFoundFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	p, _ := remote.NewProvider(srv.URL, httpclient.New(testClient()))
	if _, err := p.FetchRaw(context.Background(), domain.RegionUK); err == nil {
		t.Error("expected error for 404")
	}
}

func TestProvider_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	p, _ := remote.NewProvider(srv.URL, httpclient.New(testClient()))
	_, err := p.FetchRaw(context.Background(), domain.RegionUK)
	if !errors.Is(err, job.ErrInvalidDocument) {
		t.Errorf("err = %v, want ErrInvalidDocument", err)
	}
}

func TestNewProvider_Validates(t *testing.T) {
	if _, err := remote.NewProvider("", httpclient.New(testClient())); err == nil {
		t.Error("expected error for empty base url")
	}
	if _, err := remote.NewProvider("http://example.test", nil); err == nil {
		t.Error("expected error for nil client")
	}
}
