package request_models

type CreateServiceRequest struct {
	Category      string   `json:"category" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	City          string   `json:"city" binding:"required"`
	Province      string   `json:"province" binding:"required"`
	Country       string   `json:"country"`
	Latitude      float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude     float64  `json:"longitude" binding:"min=-180,max=180"`
	StartingPrice float64  `json:"starting_price" binding:"min=0"`
	Images        []string `json:"images"`
	ContactEmail  string   `json:"contact_email" binding:"omitempty,email"`
	ContactPhone  string   `json:"contact_phone"`
	Website       string   `json:"website" binding:"omitempty,url"`
}

type UpdateServiceRequest struct {
	Category      *string  `json:"category"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	City          *string  `json:"city"`
	Province      *string  `json:"province"`
	Country       *string  `json:"country"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	StartingPrice *float64 `json:"starting_price" binding:"omitempty,min=0"`
	Images        []string `json:"images"`
	ContactEmail  *string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone  *string  `json:"contact_phone"`
	Website       *string  `json:"website" binding:"omitempty,url"`
}
