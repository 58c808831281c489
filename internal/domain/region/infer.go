package region

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// ErrNoSignal reports that an inferrer had nothing to go on
var ErrNoSignal = errors.New("region: no usable signal")

// Signals are the request hints available for region inference
type Signals struct {
	// Preferred is a region remembered from an earlier visit (cookie)
	Preferred string
	// CountryHeader is an ISO country code set by the CDN or load balancer
	CountryHeader  string
	AcceptLanguage string
	RemoteIP       string
}

// Inferrer guesses the visitor's region
type Inferrer interface {
	Infer(ctx context.Context, s Signals) (domain.Region, error)
}

// InferrerFunc adapts a function to Inferrer
type InferrerFunc func(ctx context.Context, s Signals) (domain.Region, error)

func (f InferrerFunc) Infer(ctx context.Context, s Signals) (domain.Region, error) {
	return f(ctx, s)
}

// Static always answers with Region, or with Err when it is set
type Static struct {
	Region domain.Region
	Err    error
}

func (s Static) Infer(context.Context, Signals) (domain.Region, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Region, nil
}

// PreferenceInferrer honours a previously chosen region
type PreferenceInferrer struct{}

func (PreferenceInferrer) Infer(_ context.Context, s Signals) (domain.Region, error) {
	if s.Preferred == "" {
		return "", ErrNoSignal
	}
	r, ok := domain.ParseRegion(s.Preferred)
	if !ok {
		return "", fmt.Errorf("%w: preferred region %q", ErrNoSignal, s.Preferred)
	}
	return r, nil
}

// HeaderInferrer maps a CDN-supplied country code onto a region
type HeaderInferrer struct{}

func (HeaderInferrer) Infer(_ context.Context, s Signals) (domain.Region, error) {
	return fromCountry(s.CountryHeader)
}

// LanguageInferrer reads the first Accept-Language tag that names a supported country
type LanguageInferrer struct{}

func (LanguageInferrer) Infer(_ context.Context, s Signals) (domain.Region, error) {
	if strings.TrimSpace(s.AcceptLanguage) == "" {
		return "", ErrNoSignal
	}

	tags, _, err := language.ParseAcceptLanguage(s.AcceptLanguage)
	if err != nil {
		return "", fmt.Errorf("%w: accept-language: %v", ErrNoSignal, err)
	}

	for _, tag := range tags {
		reg, conf := tag.Region()
		if conf != language.Exact {
			continue
		}
		if r, ok := domain.RegionForCountry(reg.String()); ok {
			return r, nil
		}
	}
	return "", ErrNoSignal
}

// CountryLookup resolves an IP address to an ISO country code
type CountryLookup interface {
	Country(ctx context.Context, ip string) (string, error)
}

// LookupInferrer geolocates the remote address
type LookupInferrer struct {
	Lookup CountryLookup
}

func (l LookupInferrer) Infer(ctx context.Context, s Signals) (domain.Region, error) {
	if l.Lookup == nil || s.RemoteIP == "" {
		return "", ErrNoSignal
	}
	country, err := l.Lookup.Country(ctx, s.RemoteIP)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoSignal, err)
	}
	return fromCountry(country)
}

// Chain tries each inferrer in order and returns the first answer
type Chain []Inferrer

func (c Chain) Infer(ctx context.Context, s Signals) (domain.Region, error) {
	var errs []error
	for _, inf := range c {
		r, err := inf.Infer(ctx, s)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrNoSignal) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return "", errors.Join(append([]error{ErrNoSignal}, errs...)...)
	}
	return "", ErrNoSignal
}

func fromCountry(code string) (domain.Region, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrNoSignal
	}
	r, ok := domain.RegionForCountry(code)
	if !ok {
		return "", fmt.Errorf("%w: country %q", ErrNoSignal, code)
	}
	return r, nil
}
