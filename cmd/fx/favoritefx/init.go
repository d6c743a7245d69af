package favoritefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/internal/repositories"
	"tusalon/internal/services"
)

var Module = fx.Provide(
	provideFavoriteService, provideFavoriteRepo)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	venueRepo repositories.VenueRepository,
	serviceRepo repositories.ServiceRepository,
) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, venueRepo, serviceRepo)
}
