package configfx

import (
	"time"

	"go.uber.org/fx"
	"tusalon/internal/configs"
	"tusalon/pkg/utils"
)

var Module = fx.Provide(
	configs.Load, provideJWTManager)

func provideJWTManager(cfg *configs.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
}
