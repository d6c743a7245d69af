package mailfx

import (
	"log"

	"go.uber.org/fx"
	"tusalon/internal/configs"
	"tusalon/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *configs.Config) services.IMailService {

	smtpCfg := services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   cfg.SMTPFromName,
		UseSSL:     cfg.SMTPPort == 465,
		RequireTLS: true,

		AppName:    "TuSalon",
		AppBaseURL: cfg.AppBaseURL,
	}

	mailService, err := services.NewSMTPMailService(smtpCfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
