package request_models

import "github.com/google/uuid"

type CreateInquiryRequest struct {
	ProviderID  uuid.UUID  `json:"provider_id" binding:"required"`
	ListingKind string     `json:"listing_kind" binding:"required,oneof=venue service"`
	ListingID   *uuid.UUID `json:"listing_id"`
	EventDate   string     `json:"event_date"` // YYYY-MM-DD
	GuestCount  *int       `json:"guest_count" binding:"omitempty,min=1"`
	Message     string     `json:"message" binding:"required"`
}

type UpdateInquiryRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending contacted confirmed cancelled completed"`
	ProviderReply *string `json:"provider_reply"`
}
