package response_models

type FavoriteResponse struct {
	ID        string `json:"id"`
	ItemKind  string `json:"item_kind"`
	ItemID    string `json:"item_id"`
	CreatedAt int64  `json:"created_at"`

	// Item is the resolved listing: a VenueResponse or ServiceResponse
	// depending on ItemKind. Nil when the listing no longer resolves.
	Item interface{} `json:"item,omitempty"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool    `json:"is_favorite"`
	FavoriteID *string `json:"favorite_id,omitempty"`
}
