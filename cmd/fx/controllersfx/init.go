package controllersfx

import (
	"go.uber.org/fx"
	"tusalon/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewVenuesController),
	fx.Provide(controllers.NewServicesController),
	fx.Provide(controllers.NewInquiriesController),
	fx.Provide(controllers.NewFavoritesController))
