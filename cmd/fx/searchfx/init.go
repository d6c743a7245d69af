package searchfx

import (
	"go.uber.org/fx"
	"tusalon/internal/repositories"
	"tusalon/internal/services"
)

var Module = fx.Provide(provideSearchService)

func provideSearchService(
	venueRepo repositories.VenueRepository,
	serviceRepo repositories.ServiceRepository,
) services.SearchServiceInterface {
	return services.NewSearchService(venueRepo, serviceRepo)
}
