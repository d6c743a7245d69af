package db_models

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryContacted InquiryStatus = "contacted"
	InquiryConfirmed InquiryStatus = "confirmed"
	InquiryCancelled InquiryStatus = "cancelled"
	InquiryCompleted InquiryStatus = "completed"
)

var inquiryStatuses = map[InquiryStatus]bool{
	InquiryPending:   true,
	InquiryContacted: true,
	InquiryConfirmed: true,
	InquiryCancelled: true,
	InquiryCompleted: true,
}

func (s InquiryStatus) Valid() bool {
	return inquiryStatuses[s]
}

// Inquiry is a client's request to a provider about one of its
// listings. The listing is referenced as a (kind, id) pair rather than
// two nullable foreign keys; ListingID may be nil for a general inquiry
// to the provider.
type Inquiry struct {
	BaseModel
	ClientID    uuid.UUID   `gorm:"type:uuid;index"`
	ProviderID  uuid.UUID   `gorm:"type:uuid;index"`
	ListingKind ListingKind `gorm:"type:varchar(16)"`
	ListingID   *uuid.UUID  `gorm:"type:uuid"`
	EventDate   *time.Time
	GuestCount  *int
	Message     string        `gorm:"type:text"`
	Status      InquiryStatus `gorm:"type:varchar(16);default:'pending';index"`

	ProviderReply *string `gorm:"type:text"`
	RepliedAt     *time.Time

	Client   Account `gorm:"foreignKey:ClientID"`
	Provider Account `gorm:"foreignKey:ProviderID"`
}
