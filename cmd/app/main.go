package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/cmd/fx/accountfx"
	"tusalon/cmd/fx/configfx"
	"tusalon/cmd/fx/controllersfx"
	"tusalon/cmd/fx/dbfx"
	"tusalon/cmd/fx/favoritefx"
	"tusalon/cmd/fx/inquiryfx"
	"tusalon/cmd/fx/mailfx"
	"tusalon/cmd/fx/memcachefx"
	"tusalon/cmd/fx/searchfx"
	"tusalon/cmd/fx/servicefx"
	"tusalon/cmd/fx/venuefx"
	"tusalon/internal/api/controllers"
	"tusalon/internal/configs"
	"tusalon/internal/infra"
	"tusalon/pkg/middleware"
	"tusalon/pkg/utils"
)

func main() {
	app := fx.New(
		configfx.Module,
		dbfx.Module,
		mailfx.Module,
		memcachefx.Module,
		accountfx.Module,
		venuefx.Module,
		servicefx.Module,
		searchfx.Module,
		inquiryfx.Module,
		favoritefx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *configs.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	db *gorm.DB,
	jwtManager *utils.JWTManager,
	accountController *controllers.AccountController,
	venuesController *controllers.VenuesController,
	servicesController *controllers.ServicesController,
	inquiriesController *controllers.InquiriesController,
	favoritesController *controllers.FavoritesController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, jwtManager,
		accountController, venuesController, servicesController,
		inquiriesController, favoritesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtManager *utils.JWTManager,
	accountController *controllers.AccountController,
	venuesController *controllers.VenuesController,
	servicesController *controllers.ServicesController,
	inquiriesController *controllers.InquiriesController,
	favoritesController *controllers.FavoritesController) {

	v1 := r.Group("/api/v1")
	authRequired := middleware.JWTAuthMiddleware(jwtManager)

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/forgot-password", accountController.ForgotPassword)
	authGroup.POST("/reset-password", accountController.ResetPassword)
	authGroup.GET("/me", authRequired, accountController.Me)

	profileGroup := v1.Group("/profile", authRequired)
	profileGroup.GET("", accountController.Me)
	profileGroup.PUT("", accountController.UpdateProfile)
	profileGroup.PUT("/password", accountController.ChangePassword)

	venuesGroup := v1.Group("/venues")
	venuesGroup.GET("", venuesController.Search)
	venuesGroup.GET("/search", venuesController.Search)
	venuesGroup.GET("/mine", authRequired, middleware.RoleMiddleware("provider", "admin"), venuesController.Mine)
	venuesGroup.GET("/:id", venuesController.GetByID)
	venuesGroup.POST("", authRequired, middleware.RoleMiddleware("provider", "admin"), venuesController.Create)
	venuesGroup.PUT("/:id", authRequired, venuesController.Update)
	venuesGroup.DELETE("/:id", authRequired, venuesController.Delete)

	servicesGroup := v1.Group("/services")
	servicesGroup.GET("", servicesController.Search)
	servicesGroup.GET("/search", servicesController.Search)
	servicesGroup.GET("/mine", authRequired, middleware.RoleMiddleware("provider", "admin"), servicesController.Mine)
	servicesGroup.GET("/:id", servicesController.GetByID)
	servicesGroup.POST("", authRequired, middleware.RoleMiddleware("provider", "admin"), servicesController.Create)
	servicesGroup.PUT("/:id", authRequired, servicesController.Update)
	servicesGroup.DELETE("/:id", authRequired, servicesController.Delete)

	inquiriesGroup := v1.Group("/inquiries", authRequired)
	inquiriesGroup.POST("", middleware.RoleMiddleware("client", "admin"), inquiriesController.Create)
	inquiriesGroup.GET("", inquiriesController.Mine)
	inquiriesGroup.GET("/mine", inquiriesController.Mine)
	inquiriesGroup.PUT("/:id", inquiriesController.Update)
	inquiriesGroup.PATCH("/:id", inquiriesController.Update)

	favoritesGroup := v1.Group("/favorites", authRequired)
	favoritesGroup.GET("", favoritesController.List)
	favoritesGroup.POST("", favoritesController.Add)
	favoritesGroup.DELETE("/:id", favoritesController.Remove)
	favoritesGroup.GET("/check/:kind/:id", favoritesController.Check)
}
