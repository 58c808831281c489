package server

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-retryablehttp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/config"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/dataset"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	adzunaprovider "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/adzuna"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/curated"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/document"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/graph"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/remote"
	sheetsprovider "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/sheets"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/region"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/forms"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/mcp"
	storage "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/storage/neo4j"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/web"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/adzuna"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/captcha"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/email"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/geoip"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/httpclient"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
	n4j "github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/neo4j"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/sheets"
)

// App is the assembled process: the listener plus the catalog loader it serves
type App struct {
	Server *Server
	Loader *job.Loader
	Config config.Config
}

// Warm preloads every region's catalog when CATALOG_WARM is set
func (a *App) Warm(ctx context.Context) error {
	if !a.Config.Catalog.Warm {
		return nil
	}
	return a.Loader.Warm(ctx, domain.Regions()...)
}

func newApp(cfg config.Config, srv *Server, loader *job.Loader) *App {
	return &App{Server: srv, Loader: loader, Config: cfg}
}

// provideHTTPClient builds the retrying client shared by outbound integrations
func provideHTTPClient(cfg config.Config, logger *logging.Logger) *retryablehttp.Client {
	return httpclient.New(httpclient.Config{
		Timeout: cfg.Catalog.LoadTimeout,
		Logger:  logger.Named("http"),
	})
}

// provideSheetsClient returns nil when no credentials are configured
func provideSheetsClient(ctx context.Context, cfg config.Config) (*sheets.Client, error) {
	if cfg.Sheets.CredentialsFile == "" {
		return nil, nil
	}
	return sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsFile})
}

// provideDatasetSource selects the upstream named by DATASET_SOURCE.
// The cleanup closes the graph driver when one was opened.
func provideDatasetSource(ctx context.Context, cfg config.Config, client *retryablehttp.Client, logger *logging.Logger) (job.DatasetSource, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.DatasetEmbedded, "":
		p, err := document.NewProvider(dataset.FS)
		return p, noop, err
	case config.DatasetDir:
		p, err := document.NewProvider(os.DirFS(cfg.Catalog.Dir))
		return p, noop, err
	case config.DatasetRemote:
		p, err := remote.NewProvider(cfg.Catalog.URL, client)
		return p, noop, err
	case config.DatasetAdzuna:
		ac, err := adzuna.NewClient(adzuna.Config{
			AppID:      cfg.Adzuna.AppID,
			AppKey:     cfg.Adzuna.AppKey,
			Country:    adzunaprovider.CountryFor(domain.RegionUK),
			BaseURL:    cfg.Adzuna.BaseURL,
			HTTPClient: client.StandardClient(),
		})
		if err != nil {
			return nil, noop, err
		}
		p, err := adzunaprovider.NewProvider(ac, cfg.Adzuna.Query)
		return p, noop, err
	case config.DatasetGraph:
		nc, err := n4j.NewClient(ctx, n4j.Config{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
			Database: cfg.Neo4j.Database,
		})
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := nc.Close(context.Background()); err != nil {
				logger.Warn("neo4j close failed", "err", err)
			}
		}
		p, err := graph.NewProvider(storage.NewDatasetRepository(nc))
		if err != nil {
			cleanup()
			return nil, noop, err
		}
		return p, cleanup, nil
	default:
		return nil, noop, fmt.Errorf("unknown dataset source %q", cfg.Catalog.Source)
	}
}

// provideSupplementSource selects the curated records named by SUPPLEMENT_SOURCE
func provideSupplementSource(cfg config.Config, client *sheets.Client) (job.SupplementSource, error) {
	switch cfg.Catalog.Supplement {
	case config.SupplementCurated, "":
		return curated.NewProvider(nil), nil
	case config.SupplementSheets:
		if client == nil {
			return nil, fmt.Errorf("sheets supplement requires SHEETS_CREDENTIALS_FILE")
		}
		return sheetsprovider.NewProvider(client, cfg.Sheets.JobsSpreadsheetID)
	case config.SupplementNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown supplement source %q", cfg.Catalog.Supplement)
	}
}

func provideLoader(cfg config.Config, store *job.Store, ds job.DatasetSource, supplement job.SupplementSource, logger *logging.Logger) (*job.Loader, error) {
	return job.NewLoader(store, ds, supplement,
		job.WithLoadTimeout(cfg.Catalog.LoadTimeout),
		job.WithLoaderLogger(logger.Named("catalog")),
	)
}

// provideResolver chains the request signals, adding IP lookup when GEOIP_URL is set
func provideResolver(cfg config.Config, client *retryablehttp.Client, logger *logging.Logger) (*region.Resolver, error) {
	chain := region.Chain{
		region.PreferenceInferrer{},
		region.HeaderInferrer{},
		region.LanguageInferrer{},
	}

	if cfg.Region.GeoIPURL != "" {
		gc, err := geoip.NewClient(geoip.Config{
			URLTemplate:  cfg.Region.GeoIPURL,
			CountryField: cfg.Region.GeoIPCountryField,
			HTTPClient:   client,
		})
		if err != nil {
			return nil, err
		}
		chain = append(chain, region.LookupInferrer{Lookup: gc})
	}

	fallback, _ := domain.ParseRegion(cfg.Region.Default)
	return region.NewResolver(chain,
		region.WithFallback(fallback),
		region.WithResolverLogger(logger.Named("region")),
	), nil
}

func provideEmailSender(cfg config.Config, logger *logging.Logger) (email.Sender, error) {
	return email.NewSender(email.Config{
		Provider: cfg.Email.Provider,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
		SendGrid: email.SendGridConfig{Key: cfg.Email.SendGridKey},
		Mailgun: email.MailgunConfig{
			Key:     cfg.Email.MailgunKey,
			Domain:  cfg.Email.MailgunDomain,
			APIBase: cfg.Email.MailgunAPIBase,
		},
	}, logger.Named("email"))
}

// provideFormService attaches captcha verification and the submissions sheet when configured
func provideFormService(cfg config.Config, sender email.Sender, sheetsClient *sheets.Client, client *retryablehttp.Client, logger *logging.Logger) (*forms.Service, error) {
	opts := []forms.Option{forms.WithLogger(logger.Named("forms"))}

	if cfg.Captcha.Secret != "" {
		v, err := captcha.NewVerifier(captcha.Config{
			Secret:     cfg.Captcha.Secret,
			VerifyURL:  cfg.Captcha.VerifyURL,
			HTTPClient: client,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, forms.WithVerifier(v))
	}

	if sheetsClient != nil && cfg.Sheets.SubmissionsSpreadsheetID != "" {
		rec, err := forms.NewSheetsRecorder(sheetsClient, cfg.Sheets.SubmissionsSpreadsheetID, cfg.Sheets.SubmissionsTab)
		if err != nil {
			return nil, err
		}
		opts = append(opts, forms.WithRecorder(rec))
	}

	return forms.NewService(sender, cfg.Email.To, opts...)
}

func provideWebHandler(cfg config.Config, jobs job.Service, loc *locale.Engine, resolver *region.Resolver, submitter *forms.Service, logger *logging.Logger) (*web.Handler, error) {
	return web.NewHandler(jobs, loc, resolver, submitter, web.Config{
		CountryHeader:     cfg.Region.CountryHeader,
		CookieName:        cfg.Region.Cookie,
		CaptchaSiteKey:    cfg.Captcha.SiteKey,
		TrustForwardedFor: cfg.Region.TrustForwardedFor,
	}, logger)
}

func provideMCPServer(jobs job.Service, loc *locale.Engine, resolver *region.Resolver, logger *logging.Logger) *sdkmcp.Server {
	return mcp.NewServer(mcp.Resources{
		JobService: jobs,
		Locale:     loc,
		Resolver:   resolver,
	}, logger)
}

func provideServer(cfg config.Config, site *web.Handler, mcpServer *sdkmcp.Server, logger *logging.Logger) *Server {
	return NewServer(cfg.Addr(), NewMux(site, mcpServer, logger), logger)
}
