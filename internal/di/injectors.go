//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"surveyd/internal"
	"surveyd/internal/controllers"
	"surveyd/internal/providers"
	"surveyd/internal/services"
	"surveyd/internal/structures"
	"surveyd/internal/survey"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		survey.NewZstdCompressor,
		survey.NewJournal,
		survey.NewSHA256Digester,
		survey.NewAnonymizer,
		survey.NewKeyDeriver,
		survey.NewRecordAssembler,
		survey.NewSubmissionValidator,
		survey.NewScheduler,
		services.NewSurveyService,
		controllers.NewSurveyController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
