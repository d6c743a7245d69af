package venuefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/internal/repositories"
	"tusalon/internal/services"
)

var Module = fx.Provide(
	provideVenueService, provideVenueRepo)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideVenueService(venueRepo repositories.VenueRepository) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo)
}
