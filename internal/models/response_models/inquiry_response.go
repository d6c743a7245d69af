package response_models

import (
	"time"

	"tusalon/internal/models/db_models"
)

type InquiryResponse struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"client_id"`
	ProviderID  string  `json:"provider_id"`
	ListingKind string  `json:"listing_kind"`
	ListingID   *string `json:"listing_id,omitempty"`
	EventDate   string  `json:"event_date,omitempty"`
	GuestCount  *int    `json:"guest_count,omitempty"`
	Message     string  `json:"message"`
	Status      string  `json:"status"`
	CreatedAt   int64   `json:"created_at"`

	ProviderReply *string `json:"provider_reply,omitempty"`
	RepliedAt     string  `json:"replied_at,omitempty"`

	Client   *ProviderProfile `json:"client,omitempty"`
	Provider *ProviderProfile `json:"provider,omitempty"`
}

func NewInquiryResponse(i *db_models.Inquiry) InquiryResponse {
	resp := InquiryResponse{
		ID:            i.ID.String(),
		ClientID:      i.ClientID.String(),
		ProviderID:    i.ProviderID.String(),
		ListingKind:   string(i.ListingKind),
		GuestCount:    i.GuestCount,
		Message:       i.Message,
		Status:        string(i.Status),
		CreatedAt:     i.CreatedAt,
		ProviderReply: i.ProviderReply,
	}

	if i.ListingID != nil {
		id := i.ListingID.String()
		resp.ListingID = &id
	}
	if i.EventDate != nil {
		resp.EventDate = i.EventDate.Format("2006-01-02")
	}
	if i.RepliedAt != nil {
		resp.RepliedAt = i.RepliedAt.Format(time.RFC3339)
	}

	return resp
}
