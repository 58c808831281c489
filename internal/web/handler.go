package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	g "maragu.dev/gomponents"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/region"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/forms"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

const (
	defaultCookieName = "flexzo_region"
	captchaInput      = "captcha_token"
	latestJobs        = 3
)

// Submitter delivers validated form submissions
type Submitter interface {
	Submit(ctx context.Context, region domain.Region, form forms.Form, remoteIP string) (forms.Receipt, error)
}

var _ Submitter = (*forms.Service)(nil)

// Config tunes request handling
type Config struct {
	// CountryHeader names the CDN header carrying the visitor's ISO country code
	CountryHeader string
	// CookieName remembers the last region a visitor browsed
	CookieName string
	// CaptchaSiteKey enables the Turnstile widget on forms
	CaptchaSiteKey string
	// TrustForwardedFor takes the client IP from X-Forwarded-For
	TrustForwardedFor bool
}

// Handler serves the region-prefixed site
type Handler struct {
	jobs     job.Service
	locale   *locale.Engine
	resolver *region.Resolver
	forms    Submitter
	cfg      Config
	logger   *logging.Logger
}

// NewHandler wires the site handlers
func NewHandler(jobs job.Service, loc *locale.Engine, resolver *region.Resolver, submitter Submitter, cfg Config, logger *logging.Logger) (*Handler, error) {
	if jobs == nil {
		return nil, fmt.Errorf("web: job service is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("web: region resolver is required")
	}
	if submitter == nil {
		return nil, fmt.Errorf("web: form submitter is required")
	}
	if loc == nil {
		loc = locale.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}

	return &Handler{
		jobs:     jobs,
		locale:   loc,
		resolver: resolver,
		forms:    submitter,
		cfg:      cfg,
		logger:   logger.Named("web"),
	}, nil
}

// Register mounts the site routes on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /{region}", h.regional(h.home))
	mux.HandleFunc("GET /{region}/jobs", h.regional(h.search))
	mux.HandleFunc("GET /{region}/jobs/search", h.regional(h.search))
	mux.HandleFunc("GET /{region}/jobs/{id}", h.regional(h.detail))
	mux.HandleFunc("GET /{region}/jobs/{id}/{slug}", h.regional(h.detail))
	mux.HandleFunc("GET /{region}/jobs/{id}/apply", h.regional(h.applyForm))
	mux.HandleFunc("POST /{region}/jobs/{id}/apply", h.regional(h.submitApplication))
	mux.HandleFunc("GET /{region}/contact", h.regional(h.contactForm))
	mux.HandleFunc("POST /{region}/contact", h.regional(h.submitContact))
	mux.HandleFunc("GET /{region}/book-demo", h.regional(h.demoForm))
	mux.HandleFunc("POST /{region}/book-demo", h.regional(h.submitDemo))
	mux.HandleFunc("GET /{region}/thank-you", h.regional(h.thankYou))
	mux.HandleFunc("/", h.notFound)
}

// Routes returns the site routes behind the request middleware
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)
	return Middleware(h.logger)(mux)
}

type regionalFunc func(w http.ResponseWriter, r *http.Request, p page)

// regional resolves the request's region segment and binds the navigation
// context to it before the page handler runs.
func (h *Handler) regional(next regionalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.resolver.Resolve(r.Context(), r.URL.Path, h.signals(r))
		if res.NotFound {
			h.notFound(w, r)
			return
		}

		session := region.NewSession()
		if err := session.Bind(res.Region); err != nil {
			h.logger.Error("bind region", "region", res.Region, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		router, err := session.Router()
		if err != nil {
			h.logger.Error("region router", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.remember(w, res.Region)
		ctx := region.WithRouter(r.Context(), router)
		next(w, r.WithContext(ctx), h.page(router, r.URL.RequestURI()))
	}
}

func (h *Handler) page(router region.Router, switchPath string) page {
	return page{
		router:     router,
		t:          h.locale.For(router.Region()),
		switchPath: switchPath,
		siteKey:    h.cfg.CaptchaSiteKey,
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	res := h.resolver.Resolve(r.Context(), "/", h.signals(r))
	h.remember(w, res.Region)
	h.logger.Debug("root redirect", "region", res.Region, "inferred", res.Inferred)

	target := res.Redirect
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request, p page) {
	latest := h.jobs.Peek(p.region())
	if len(latest) > latestJobs {
		latest = latest[:latestJobs]
	}
	h.render(w, http.StatusOK, homeView(p, latest))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, p page) {
	state := domain.SearchStateFromQuery(r.URL.Query())

	res, err := h.jobs.Search(r.Context(), p.region(), state)
	if err != nil {
		h.catalogError(w, r, p, err)
		return
	}

	if wantsJSON(r) {
		h.writeJSON(w, http.StatusOK, res)
		return
	}
	h.render(w, http.StatusOK, searchView(p, res, categories(h.jobs.Peek(p.region()))))
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request, p page) {
	j, ok := h.findJob(w, r, p)
	if !ok {
		return
	}

	if wantsJSON(r) {
		h.writeJSON(w, http.StatusOK, j)
		return
	}
	p.switchPath = "/jobs"
	h.render(w, http.StatusOK, detailView(p, j))
}

func (h *Handler) thankYou(w http.ResponseWriter, r *http.Request, p page) {
	p.switchPath = "/thank-you"
	h.render(w, http.StatusOK, thankYouView(p, r.URL.Query().Get("ref")))
}

// findJob loads the job named by the {id} path value, writing the error page when it cannot
func (h *Handler) findJob(w http.ResponseWriter, r *http.Request, p page) (domain.Job, bool) {
	j, err := h.jobs.Find(r.Context(), p.region(), r.PathValue("id"))
	if err == nil {
		return j, true
	}
	if errors.Is(err, job.ErrJobNotFound) {
		h.renderNotFound(w, p)
		return domain.Job{}, false
	}
	h.catalogError(w, r, p, err)
	return domain.Job{}, false
}

// catalogError renders the retryable unavailable state. It is never an empty result list.
func (h *Handler) catalogError(w http.ResponseWriter, r *http.Request, p page, err error) {
	if errors.Is(err, context.Canceled) {
		h.logger.Debug("request canceled during catalog load", "region", p.region())
		return
	}
	h.logger.Warn("catalog unavailable", "region", p.region(), "path", r.URL.Path, "err", err)

	w.Header().Set("Retry-After", "30")
	if wantsJSON(r) {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":     "catalog temporarily unavailable, try again",
			"retryable": true,
		})
		return
	}
	h.render(w, http.StatusServiceUnavailable, unavailableView(p, r.URL.RequestURI()))
}

// notFound renders the not-found page without touching the visitor's remembered region
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	reg := h.resolver.Fallback()
	if c, err := r.Cookie(h.cfg.CookieName); err == nil {
		if pref, ok := domain.ParseRegion(c.Value); ok {
			reg = pref
		}
	}
	h.renderNotFound(w, h.page(region.NewRouter(reg), "/"))
}

func (h *Handler) renderNotFound(w http.ResponseWriter, p page) {
	p.switchPath = "/"
	h.render(w, http.StatusNotFound, notFoundView(p))
}

func (h *Handler) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.logger.Warn("render page", "err", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("encode response", "err", err)
	}
}

func (h *Handler) remember(w http.ResponseWriter, reg domain.Region) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    string(reg),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) signals(r *http.Request) region.Signals {
	s := region.Signals{
		AcceptLanguage: r.Header.Get("Accept-Language"),
		RemoteIP:       h.clientIP(r),
	}
	if h.cfg.CountryHeader != "" {
		s.CountryHeader = r.Header.Get(h.cfg.CountryHeader)
	}
	if c, err := r.Cookie(h.cfg.CookieName); err == nil {
		s.Preferred = c.Value
	}
	return s
}

func (h *Handler) clientIP(r *http.Request) string {
	if h.cfg.TrustForwardedFor {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func wantsJSON(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// categories lists the distinct job titles, the values the category filter matches
func categories(catalog []domain.Job) []string {
	seen := make(map[string]struct{}, len(catalog))
	out := make([]string, 0, len(catalog))
	for _, j := range catalog {
		if _, ok := seen[j.Title]; ok {
			continue
		}
		seen[j.Title] = struct{}{}
		out = append(out, j.Title)
	}
	slices.Sort(out)
	return out
}

func thankYouPath(p page, reference string) string {
	return p.href("/thank-you?ref=" + url.QueryEscape(reference))
}
