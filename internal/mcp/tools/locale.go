package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
)

// LocaleTranslateParams defines the arguments for the locale_translate tool
type LocaleTranslateParams struct {
	Region string   `json:"region" jsonschema:"Target region: uk or us"`
	Texts  []string `json:"texts,omitempty" jsonschema:"Exact UI strings to substitute; lists the dictionary when empty"`
}

// Translation pairs a source string with its regional rendering
type Translation struct {
	Source  string `json:"source"`
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// LocaleTranslateResult is the structured response of locale_translate
type LocaleTranslateResult struct {
	Region       domain.Region `json:"region"`
	Translations []Translation `json:"translations"`
}

// WithLocaleTranslate registers the locale_translate tool
func WithLocaleTranslate(engine *locale.Engine) Option {
	return func(reg *registry) {
		if engine == nil {
			engine = locale.Default()
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "locale_translate",
			Description: "Substitute region-specific vocabulary into UI copy, e.g. NHS Trust to Health System for us",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *LocaleTranslateParams) (*sdkmcp.CallToolResult, any, error) {
			return localeTranslate(engine, params)
		})
		reg.add("locale_translate")
	}
}

func localeTranslate(engine *locale.Engine, params *LocaleTranslateParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &LocaleTranslateParams{}
	}

	region, err := parseRegion(params.Region)
	if err != nil {
		return nil, nil, err
	}

	texts := params.Texts
	if len(texts) == 0 {
		texts = engine.Entries(region)
	}

	result := LocaleTranslateResult{Region: region, Translations: make([]Translation, 0, len(texts))}
	lines := make([]string, 0, len(texts))
	for _, src := range texts {
		out := engine.T(region, src)
		result.Translations = append(result.Translations, Translation{Source: src, Text: out, Changed: out != src})
		lines = append(lines, fmt.Sprintf("%q -> %q", src, out))
	}

	header := fmt.Sprintf("%d string(s) for %s", len(texts), region)
	return textResult(summary("locale_translate", header, lines)), result, nil
}
