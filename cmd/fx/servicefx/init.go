package servicefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/internal/repositories"
	"tusalon/internal/services"
)

var Module = fx.Provide(
	provideServiceService, provideServiceRepo)

func provideServiceRepo(db *gorm.DB) repositories.ServiceRepository {
	return repositories.NewServiceRepository(db)
}

func provideServiceService(serviceRepo repositories.ServiceRepository) services.ServiceServiceInterface {
	return services.NewServiceService(serviceRepo)
}
