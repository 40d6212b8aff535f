package internal

import (
	"net/http"

	"surveyd/internal/controllers"
	"surveyd/internal/providers"
	"surveyd/internal/structures"
)

func InitRoutes(surveyController *controllers.SurveyController, healthController *controllers.HealthController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/v1/survey", http.HandlerFunc(surveyController.SubmitSurvey))
	routers.Get("/v1/time", http.HandlerFunc(healthController.Time))
	return routers
}
