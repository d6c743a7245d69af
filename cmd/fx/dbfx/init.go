package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/internal/configs"
	"tusalon/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *configs.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
