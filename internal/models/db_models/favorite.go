package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite bookmarks a venue or service for an account. ItemID is not a
// foreign key; the (ItemKind, ItemID) pair is resolved at write time
// against the matching listing table. The composite unique index is the
// uniqueness invariant: one bookmark per (account, kind, item).
//
// Favorite does not embed BaseModel: a soft-deleted row would still
// occupy the unique index and block re-adding the same item, so removes
// are hard deletes.
type Favorite struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CreatedAt int64       `gorm:"autoCreateTime"`
	AccountID uuid.UUID   `gorm:"type:uuid;uniqueIndex:favorites_account_item_idx"`
	ItemKind  ListingKind `gorm:"type:varchar(16);uniqueIndex:favorites_account_item_idx"`
	ItemID    uuid.UUID   `gorm:"type:uuid;uniqueIndex:favorites_account_item_idx"`

	Account Account `gorm:"foreignKey:AccountID"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = time.Now().Unix()
	return nil
}
