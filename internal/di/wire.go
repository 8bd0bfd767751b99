//go:build wireinject

package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"toc-generator/internal/adapter/filesystem"
	"toc-generator/internal/adapter/logging"
	"toc-generator/internal/adapter/preview"
	"toc-generator/internal/adapter/readme"
	"toc-generator/internal/app"
	"toc-generator/internal/config"
	"toc-generator/internal/domain/ports"
	"toc-generator/internal/usecase"
)

var generatorSet = wire.NewSet(
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideRecordProvider,
	provideTemplateLoader,
	providePublisher,
	providePreviewer,
	provideRenderer,
	provideGeneratorConfig,
	usecase.NewGenerator,
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		generatorSet,
		wire.Bind(new(app.Job), new(*usecase.Generator)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}

// InitializeGenerator wires a generator for one-off use by the CLI.
func InitializeGenerator(cfg *config.Config) (*usecase.Generator, error) {
	wire.Build(generatorSet)
	return nil, nil
}

// InitializeVerifier wires a verifier against the configured output document.
func InitializeVerifier(cfg *config.Config) (*usecase.Verifier, error) {
	wire.Build(
		generatorSet,
		provideListingReader,
		usecase.NewVerifier,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewSlog(os.Stderr, level, cfg.LogFormat), nil
}

func provideRecordProvider(cfg *config.Config, logger ports.Logger) ports.RecordProvider {
	return filesystem.NewSource(cfg.SourceRoot, cfg.Extension, logger)
}

func provideTemplateLoader(cfg *config.Config) ports.TemplateLoader {
	return filesystem.NewTemplateFile(cfg.TemplatePath)
}

func providePublisher(cfg *config.Config, logger ports.Logger) ports.Publisher {
	return filesystem.NewFilePublisher(cfg.OutputPath, logger)
}

func providePreviewer(cfg *config.Config, logger ports.Logger) ports.Previewer {
	if cfg.PreviewPath == "" {
		return nil
	}
	return preview.New(cfg.PreviewPath, cfg.ProblemSiteName+" solutions", logger)
}

func provideListingReader(cfg *config.Config) ports.ListingReader {
	return readme.NewDocument(cfg.OutputPath)
}

func provideRenderer(cfg *config.Config) *usecase.Renderer {
	return usecase.NewRenderer(usecase.RendererConfig{
		BaseURL:         cfg.BaseURL,
		Extension:       cfg.Extension,
		ProblemSiteName: cfg.ProblemSiteName,
		ProblemSiteURL:  cfg.ProblemSiteURL,
		Labels:          cfg.Labels,
	})
}

func provideGeneratorConfig(cfg *config.Config) usecase.GeneratorConfig {
	return usecase.GeneratorConfig{
		SuffixOffset: cfg.SuffixOffset,
		StrictLabels: cfg.StrictLabels,
		Labels:       cfg.Labels,
	}
}

func provideSchedule(cfg *config.Config) app.Schedule {
	return app.Schedule(cfg.Schedule)
}
