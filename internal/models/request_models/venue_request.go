package request_models

type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Province    string   `json:"province" binding:"required"`
	PostalCode  string   `json:"postal_code"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64  `json:"longitude" binding:"min=-180,max=180"`
	Capacity    int      `json:"capacity" binding:"min=0"`
	BasePrice   float64  `json:"base_price" binding:"min=0"`
	Images      []string `json:"images"`
	Included    []string `json:"included_services"`
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Province    *string  `json:"province"`
	PostalCode  *string  `json:"postal_code"`
	Country     *string  `json:"country"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=0"`
	BasePrice   *float64 `json:"base_price" binding:"omitempty,min=0"`
	Images      []string `json:"images"`
	Included    []string `json:"included_services"`
}
