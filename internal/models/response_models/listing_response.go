package response_models

import "tusalon/internal/models/db_models"

type VenueResponse struct {
	ID          string   `json:"id"`
	ProviderID  string   `json:"provider_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	PostalCode  string   `json:"postal_code,omitempty"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Capacity    int      `json:"capacity"`
	BasePrice   float64  `json:"base_price"`
	Images      []string `json:"images"`
	Included    []string `json:"included_services"`
	Status      string   `json:"status"`
	CreatedAt   int64    `json:"created_at"`

	// Set only on geographic searches.
	DistanceKm *float64 `json:"distance_km,omitempty"`

	Provider *ProviderProfile `json:"provider,omitempty"`
}

func NewVenueResponse(v *db_models.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID.String(),
		ProviderID:  v.ProviderID.String(),
		Name:        v.Name,
		Description: v.Description,
		Address:     v.Address,
		City:        v.City,
		Province:    v.Province,
		PostalCode:  v.PostalCode,
		Country:     v.Country,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		Capacity:    v.Capacity,
		BasePrice:   v.BasePrice,
		Images:      v.Images,
		Included:    v.Included,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
	}
}

type ServiceResponse struct {
	ID            string   `json:"id"`
	ProviderID    string   `json:"provider_id"`
	Category      string   `json:"category"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	City          string   `json:"city"`
	Province      string   `json:"province"`
	Country       string   `json:"country"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	StartingPrice float64  `json:"starting_price"`
	Images        []string `json:"images"`
	ContactEmail  string   `json:"contact_email,omitempty"`
	ContactPhone  string   `json:"contact_phone,omitempty"`
	Website       string   `json:"website,omitempty"`
	Status        string   `json:"status"`
	CreatedAt     int64    `json:"created_at"`

	DistanceKm *float64 `json:"distance_km,omitempty"`

	Provider *ProviderProfile `json:"provider,omitempty"`
}

func NewServiceResponse(s *db_models.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID.String(),
		ProviderID:    s.ProviderID.String(),
		Category:      string(s.Category),
		Name:          s.Name,
		Description:   s.Description,
		City:          s.City,
		Province:      s.Province,
		Country:       s.Country,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		StartingPrice: s.StartingPrice,
		Images:        s.Images,
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		Website:       s.Website,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}
