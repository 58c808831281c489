//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/config"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/locale"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

// InitializeApp wires the catalog, region, form and transport layers from cfg
func InitializeApp(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, func(), error) {
	wire.Build(
		// Infrastructure
		provideHTTPClient,
		provideSheetsClient,

		// Catalog
		provideDatasetSource,
		provideSupplementSource,
		job.NewStore,
		provideLoader,
		job.NewServiceWithDeps,

		// Region and locale
		locale.Default,
		provideResolver,

		// Forms
		provideEmailSender,
		provideFormService,

		// Transports
		provideWebHandler,
		provideMCPServer,
		provideServer,
		newApp,
	)

	return nil, nil, nil
}
