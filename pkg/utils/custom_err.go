package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrVenueNotFound   = errors.New("venue not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrInquiryNotFound = errors.New("inquiry not found")

	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("item already in favorites")

	ErrNotOwner           = errors.New("actor does not own this resource")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidListingKind = errors.New("listing kind must be venue or service")
	ErrInvalidCategory    = errors.New("invalid service category")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidEventDate   = errors.New("event date must be YYYY-MM-DD")

	ErrDatabaseError = errors.New("database error")
)
