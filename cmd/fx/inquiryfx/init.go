package inquiryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tusalon/internal/repositories"
	"tusalon/internal/services"
)

var Module = fx.Provide(
	provideInquiryService, provideInquiryRepo)

func provideInquiryRepo(db *gorm.DB) repositories.InquiryRepository {
	return repositories.NewInquiryRepository(db)
}

func provideInquiryService(
	inquiryRepo repositories.InquiryRepository,
	accountRepo repositories.AccountRepository,
	venueRepo repositories.VenueRepository,
	serviceRepo repositories.ServiceRepository,
	mailService services.IMailService,
) services.InquiryServiceInterface {
	return services.NewInquiryService(inquiryRepo, accountRepo, venueRepo, serviceRepo, mailService)
}
