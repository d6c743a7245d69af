package request_models

import "github.com/google/uuid"

type AddFavoriteRequest struct {
	ItemKind string    `json:"item_kind" binding:"required,oneof=venue service"`
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
}
