package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/internal/repositories"
	"tusalon/internal/services"
	mem "tusalon/pkg/memcache"
	"tusalon/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	jwtManager *utils.JWTManager,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetTokens, jwtManager)
}
