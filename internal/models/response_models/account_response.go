package response_models

import "tusalon/internal/models/db_models"

type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

func NewAccountResponse(account *db_models.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Phone:     account.Phone,
		Role:      string(account.Role),
		Verified:  account.Verified,
	}
}

// ProviderProfile is the owner view embedded in listing responses.
// Credentials are never included.
type ProviderProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

func NewProviderProfile(account *db_models.Account) *ProviderProfile {
	if account == nil {
		return nil
	}
	return &ProviderProfile{
		ID:        account.ID.String(),
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Phone:     account.Phone,
	}
}
