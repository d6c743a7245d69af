package services

import (
	"context"
	"log"
	"time"

	"tusalon/internal/models/db_models"
	"tusalon/internal/models/request_models"
	"tusalon/internal/models/response_models"
	"tusalon/internal/repositories"
	mem "tusalon/pkg/memcache"
	"tusalon/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID string) (response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error)
	ChangePassword(ctx context.Context, accountID string, request request_models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	jwtManager  *utils.JWTManager
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	jwtManager *utils.JWTManager,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		jwtManager:  jwtManager,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (response_models.LoginResponse, error) {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return response_models.LoginResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Phone:        request.Phone,
		Role:         db_models.AccountRole(request.Role),
		Verified:     false,
		Active:       true,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		log.Printf("Error creating account: %v", err)
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	token, err := a.jwtManager.CreateToken(newAccount.ID, string(newAccount.Role))
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	return response_models.LoginResponse{
		Token: token,
		User:  response_models.NewAccountResponse(newAccount),
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	if account == nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if !account.Active {
		return response_models.LoginResponse{}, utils.ErrAccountInactive
	}

	token, err := a.jwtManager.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{
		Token: token,
		User:  response_models.NewAccountResponse(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	return response_models.NewAccountResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	if request.Email != nil && *request.Email != account.Email {
		existing, err := a.accountRepo.FindByEmail(ctx, *request.Email)
		if err != nil {
			return response_models.AccountResponse{}, utils.ErrDatabaseError
		}
		if existing != nil {
			return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
		}
		account.Email = *request.Email
	}

	if request.FirstName != nil {
		account.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		account.LastName = *request.LastName
	}
	if request.Phone != nil {
		account.Phone = *request.Phone
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		log.Printf("Error updating profile: %v", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewAccountResponse(account), nil
}

func (a *AccountService) ChangePassword(ctx context.Context, accountID string, request request_models.ChangePasswordRequest) error {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	account.PasswordHash = hashed

	if err := a.accountRepo.Update(ctx, account); err != nil {
		log.Printf("Error changing password: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

// ForgotPassword never discloses whether the email exists; a missing
// account is a silent success.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Error sending reset mail: %v", err)
	}

	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	account.PasswordHash = hashed

	if err := a.accountRepo.Update(ctx, account); err != nil {
		log.Printf("Error resetting password: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}
