package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// Dataset sources
const (
	DatasetEmbedded = "embedded"
	DatasetDir      = "dir"
	DatasetRemote   = "remote"
	DatasetAdzuna   = "adzuna"
	DatasetGraph    = "graph"
)

// Supplement sources
const (
	SupplementCurated = "curated"
	SupplementSheets  = "sheets"
	SupplementNone    = "none"
)

// Config contains runtime settings for the job discovery server
type Config struct {
	LogLevel    string
	Development bool
	Host        string // default 0.0.0.0
	Port        string // default 8080

	Region  RegionConfig
	Catalog CatalogConfig
	Adzuna  AdzunaConfig
	Neo4j   Neo4jConfig
	Sheets  SheetsConfig
	Email   EmailConfig
	Captcha CaptchaConfig
}

// RegionConfig controls region inference at the site root
type RegionConfig struct {
	Default           string
	CountryHeader     string // e.g. CF-IPCountry
	Cookie            string
	TrustForwardedFor bool
	GeoIPURL          string // empty disables IP lookup
	GeoIPCountryField string
}

// CatalogConfig selects where job catalogs come from
type CatalogConfig struct {
	Source      string
	Dir         string
	URL         string
	Supplement  string
	LoadTimeout time.Duration
	Warm        bool
}

// AdzunaConfig holds Adzuna API credentials
type AdzunaConfig struct {
	AppID   string
	AppKey  string
	Query   string
	BaseURL string
}

// Neo4jConfig locates the graph upstream
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

// SheetsConfig locates the recruitment team's spreadsheets
type SheetsConfig struct {
	CredentialsFile          string
	JobsSpreadsheetID        string
	SubmissionsSpreadsheetID string
	SubmissionsTab           string
}

// EmailConfig configures form delivery
type EmailConfig struct {
	Provider       string
	From           string
	FromName       string
	To             []string
	SendGridKey    string
	MailgunKey     string
	MailgunDomain  string
	MailgunAPIBase string
}

// CaptchaConfig configures human verification on forms
type CaptchaConfig struct {
	SiteKey   string
	Secret    string
	VerifyURL string
}

// Addr returns the listen address
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")

	v.SetDefault("default_region", string(domain.RegionUK))
	v.SetDefault("country_header", "")
	v.SetDefault("region_cookie", "flexzo_region")
	v.SetDefault("trust_forwarded_for", false)
	v.SetDefault("geoip_url", "")
	v.SetDefault("geoip_country_field", "country_code")

	v.SetDefault("dataset_source", DatasetEmbedded)
	v.SetDefault("dataset_dir", "")
	v.SetDefault("dataset_url", "")
	v.SetDefault("supplement_source", SupplementCurated)
	v.SetDefault("catalog_load_timeout", 30*time.Second)
	v.SetDefault("catalog_warm", false)

	v.SetDefault("adzuna_app_id", "")
	v.SetDefault("adzuna_app_key", "")
	v.SetDefault("adzuna_query", "nurse")
	v.SetDefault("adzuna_base_url", "")

	v.SetDefault("neo4j_uri", "")
	v.SetDefault("neo4j_username", "")
	v.SetDefault("neo4j_password", "")
	v.SetDefault("neo4j_database", "")

	v.SetDefault("sheets_credentials_file", "")
	v.SetDefault("sheets_jobs_spreadsheet_id", "")
	v.SetDefault("sheets_submissions_spreadsheet_id", "")
	v.SetDefault("sheets_submissions_tab", "Submissions")

	v.SetDefault("email_provider", "log")
	v.SetDefault("email_from", "no-reply@flexzo.local")
	v.SetDefault("email_from_name", "Flexzo")
	v.SetDefault("email_to", "team@flexzo.local")
	v.SetDefault("email_sendgrid_key", "")
	v.SetDefault("email_mailgun_key", "")
	v.SetDefault("email_mailgun_domain", "")
	v.SetDefault("email_mailgun_api_base", "")

	v.SetDefault("captcha_site_key", "")
	v.SetDefault("captcha_secret", "")
	v.SetDefault("captcha_verify_url", "")
}

// Load populates config from defaults, an optional CONFIG_FILE and environment variables
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := fromViper(v)
	return cfg, cfg.Validate()
}

func fromViper(v *viper.Viper) Config {
	return Config{
		LogLevel:    v.GetString("log_level"),
		Development: v.GetBool("log_development"),
		Host:        v.GetString("host"),
		Port:        v.GetString("port"),
		Region: RegionConfig{
			Default:           strings.ToLower(v.GetString("default_region")),
			CountryHeader:     v.GetString("country_header"),
			Cookie:            v.GetString("region_cookie"),
			TrustForwardedFor: v.GetBool("trust_forwarded_for"),
			GeoIPURL:          v.GetString("geoip_url"),
			GeoIPCountryField: v.GetString("geoip_country_field"),
		},
		Catalog: CatalogConfig{
			Source:      strings.ToLower(v.GetString("dataset_source")),
			Dir:         v.GetString("dataset_dir"),
			URL:         v.GetString("dataset_url"),
			Supplement:  strings.ToLower(v.GetString("supplement_source")),
			LoadTimeout: v.GetDuration("catalog_load_timeout"),
			Warm:        v.GetBool("catalog_warm"),
		},
		Adzuna: AdzunaConfig{
			AppID:   v.GetString("adzuna_app_id"),
			AppKey:  v.GetString("adzuna_app_key"),
			Query:   v.GetString("adzuna_query"),
			BaseURL: v.GetString("adzuna_base_url"),
		},
		Neo4j: Neo4jConfig{
			URI:      v.GetString("neo4j_uri"),
			Username: v.GetString("neo4j_username"),
			Password: v.GetString("neo4j_password"),
			Database: v.GetString("neo4j_database"),
		},
		Sheets: SheetsConfig{
			CredentialsFile:          v.GetString("sheets_credentials_file"),
			JobsSpreadsheetID:        v.GetString("sheets_jobs_spreadsheet_id"),
			SubmissionsSpreadsheetID: v.GetString("sheets_submissions_spreadsheet_id"),
			SubmissionsTab:           v.GetString("sheets_submissions_tab"),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(v.GetString("email_provider")),
			From:           v.GetString("email_from"),
			FromName:       v.GetString("email_from_name"),
			To:             splitList(v.GetString("email_to")),
			SendGridKey:    v.GetString("email_sendgrid_key"),
			MailgunKey:     v.GetString("email_mailgun_key"),
			MailgunDomain:  v.GetString("email_mailgun_domain"),
			MailgunAPIBase: v.GetString("email_mailgun_api_base"),
		},
		Captcha: CaptchaConfig{
			SiteKey:   v.GetString("captcha_site_key"),
			Secret:    v.GetString("captcha_secret"),
			VerifyURL: v.GetString("captcha_verify_url"),
		},
	}
}

// Validate reports every setting the selected sources need but lack
func (c Config) Validate() error {
	var missingVars []string
	require := func(value, name string) {
		if strings.TrimSpace(value) == "" {
			missingVars = append(missingVars, name)
		}
	}

	var errs []error
	if _, ok := domain.ParseRegion(c.Region.Default); !ok {
		errs = append(errs, fmt.Errorf("DEFAULT_REGION %q is not a supported region", c.Region.Default))
	}
	if c.Catalog.LoadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("CATALOG_LOAD_TIMEOUT must be positive"))
	}

	switch c.Catalog.Source {
	case DatasetEmbedded:
	case DatasetDir:
		require(c.Catalog.Dir, "DATASET_DIR")
	case DatasetRemote:
		require(c.Catalog.URL, "DATASET_URL")
	case DatasetAdzuna:
		require(c.Adzuna.AppID, "ADZUNA_APP_ID")
		require(c.Adzuna.AppKey, "ADZUNA_APP_KEY")
	case DatasetGraph:
		require(c.Neo4j.URI, "NEO4J_URI")
		require(c.Neo4j.Username, "NEO4J_USERNAME")
		require(c.Neo4j.Password, "NEO4J_PASSWORD")
	default:
		errs = append(errs, fmt.Errorf("DATASET_SOURCE %q is not one of embedded, dir, remote, adzuna, graph", c.Catalog.Source))
	}

	switch c.Catalog.Supplement {
	case SupplementCurated, SupplementNone:
	case SupplementSheets:
		require(c.Sheets.CredentialsFile, "SHEETS_CREDENTIALS_FILE")
		require(c.Sheets.JobsSpreadsheetID, "SHEETS_JOBS_SPREADSHEET_ID")
	default:
		errs = append(errs, fmt.Errorf("SUPPLEMENT_SOURCE %q is not one of curated, sheets, none", c.Catalog.Supplement))
	}

	if c.Sheets.SubmissionsSpreadsheetID != "" {
		require(c.Sheets.CredentialsFile, "SHEETS_CREDENTIALS_FILE")
	}

	switch c.Email.Provider {
	case "", "log":
	case "sendgrid":
		require(c.Email.SendGridKey, "EMAIL_SENDGRID_KEY")
	case "mailgun":
		require(c.Email.MailgunKey, "EMAIL_MAILGUN_KEY")
		require(c.Email.MailgunDomain, "EMAIL_MAILGUN_DOMAIN")
	default:
		errs = append(errs, fmt.Errorf("EMAIL_PROVIDER %q is not one of log, sendgrid, mailgun", c.Email.Provider))
	}
	require(c.Email.From, "EMAIL_FROM")
	if len(c.Email.To) == 0 {
		missingVars = append(missingVars, "EMAIL_TO")
	}

	if c.Captcha.SiteKey != "" {
		require(c.Captcha.Secret, "CAPTCHA_SECRET")
	}

	if len(missingVars) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(dedupe(missingVars), ", ")))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
