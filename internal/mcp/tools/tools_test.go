package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/region"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/mcp/tools"
)

type lazyLoader struct {
	jobs   map[domain.Region][]domain.Job
	loaded map[domain.Region]bool
	err    error
}

func (l *lazyLoader) Load(_ context.Context, r domain.Region) ([]domain.Job, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.loaded[r] = true
	return l.jobs[r], nil
}

func (l *lazyLoader) Peek(r domain.Region) []domain.Job {
	if !l.loaded[r] {
		return []domain.Job{}
	}
	return l.jobs[r]
}

func newLoader() *lazyLoader {
	return &lazyLoader{
		loaded: map[domain.Region]bool{},
		jobs: map[domain.Region][]domain.Job{
			domain.RegionUK: {
				{ID: "uk-1", Title: "Staff Nurse", Organisation: "Leeds NHS Trust", Salary: "£28,000", ClosingDate: "Open"},
				{ID: "uk-2", Title: "Registered Nurse", Organisation: "York NHS Trust", Salary: "£35,000", ClosingDate: "Open"},
				{ID: "uk-3", Title: "Porter", Organisation: "York NHS Trust", Salary: "Competitive", ClosingDate: "Open"},
			},
		},
	}
}

func connect(t *testing.T, opts ...tools.Option) (*sdkmcp.ClientSession, []string) {
	t.Helper()
	ctx := context.Background()

	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test-server", Version: "0.0.1"}, nil)
	names := tools.Register(server, nil, opts...)

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session, names
}

func call(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return err.Error(), true
	}
	var b strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String(), res.IsError
}

func newService(t *testing.T, l *lazyLoader) job.Service {
	t.Helper()
	svc, err := job.NewService(job.WithLoader(l))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRegister_SkipsToolsWithoutServices(t *testing.T) {
	_, names := connect(t,
		tools.WithJobSearch(nil),
		tools.WithCatalogStatus(nil),
		tools.WithLocaleTranslate(nil),
		tools.WithRegionPath(nil),
		nil,
	)
	if strings.Join(names, ",") != "locale_translate,region_path" {
		t.Errorf("registered = %v", names)
	}
}

func TestJobSearch(t *testing.T) {
	session, _ := connect(t, tools.WithJobSearch(newService(t, newLoader())))

	text, isErr := call(t, session, "job_search", map[string]any{
		"region": "uk",
		"role":   "nurse",
		"sort":   "salary-high",
	})
	if isErr {
		t.Fatalf("job_search failed: %s", text)
	}
	if !strings.Contains(text, "2 of 3 uk job(s) match") {
		t.Errorf("summary = %q", text)
	}
	if strings.Index(text, "uk-2") > strings.Index(text, "uk-1") {
		t.Errorf("salary-high order not applied: %q", text)
	}

	text, _ = call(t, session, "job_search", map[string]any{"region": "uk", "limit": 1})
	if strings.Count(text, "• ") != 1 {
		t.Errorf("limit not applied: %q", text)
	}

	if text, isErr := call(t, session, "job_search", map[string]any{"region": "fr"}); !isErr {
		t.Errorf("unknown region accepted: %q", text)
	}
}

func TestJobSearch_CatalogFailure(t *testing.T) {
	l := newLoader()
	l.err = errors.New("upstream down")
	session, _ := connect(t, tools.WithJobSearch(newService(t, l)))

	if text, isErr := call(t, session, "job_search", map[string]any{"region": "us"}); !isErr {
		t.Errorf("catalog failure reported as success: %q", text)
	}
}

func TestCatalogStatus(t *testing.T) {
	l := newLoader()
	session, _ := connect(t, tools.WithCatalogStatus(newService(t, l)))

	text, _ := call(t, session, "catalog_status", map[string]any{})
	if !strings.Contains(text, "uk: loaded=false jobs=0") || !strings.Contains(text, "us: loaded=false") {
		t.Errorf("status before load = %q", text)
	}

	text, _ = call(t, session, "catalog_status", map[string]any{"region": "uk", "load": true})
	if !strings.Contains(text, "uk: loaded=true jobs=3") || strings.Contains(text, "us:") {
		t.Errorf("status after load = %q", text)
	}
}

func TestLocaleTranslate(t *testing.T) {
	session, _ := connect(t, tools.WithLocaleTranslate(locale.Default()))

	text, isErr := call(t, session, "locale_translate", map[string]any{
		"region": "us",
		"texts":  []string{"NHS Trust", "Staff Nurse"},
	})
	if isErr {
		t.Fatalf("locale_translate failed: %s", text)
	}
	if !strings.Contains(text, `"NHS Trust" -> "Health System"`) || !strings.Contains(text, `"Staff Nurse" -> "Staff Nurse"`) {
		t.Errorf("translations = %q", text)
	}

	text, _ = call(t, session, "locale_translate", map[string]any{"region": "uk"})
	if !strings.Contains(text, "0 string(s) for uk") {
		t.Errorf("uk dictionary = %q", text)
	}
}

func TestRegionPath(t *testing.T) {
	resolver := region.NewResolver(region.Static{Region: domain.RegionUS})
	session, _ := connect(t, tools.WithRegionPath(resolver))

	cases := []struct {
		args map[string]any
		want string
	}{
		{map[string]any{"path": "/jobs?role=nurse", "region": "us"}, "/jobs?role=nurse -> /us/jobs?role=nurse"},
		{map[string]any{"path": "/uk/contact", "region": "us"}, "-> /us/contact"},
		{map[string]any{"path": "/"}, "redirect /us"},
		{map[string]any{"path": "/uk/jobs"}, "/uk/jobs -> uk"},
		{map[string]any{"path": "/fr/jobs"}, "not found"},
	}
	for _, c := range cases {
		text, isErr := call(t, session, "region_path", c.args)
		if isErr || !strings.Contains(text, c.want) {
			t.Errorf("region_path(%v) = %q, want %q", c.args, text, c.want)
		}
	}
}
