package services

import (
	"context"
	"log"

	"tusalon/internal/models/db_models"
	"tusalon/internal/models/request_models"
	"tusalon/internal/models/response_models"
	"tusalon/internal/repositories"
	"tusalon/pkg/utils"
)

type VenueServiceInterface interface {
	CreateVenue(ctx context.Context, actor Actor, request request_models.CreateVenueRequest) (response_models.VenueResponse, error)
	UpdateVenue(ctx context.Context, actor Actor, id string, request request_models.UpdateVenueRequest) (response_models.VenueResponse, error)
	RetireVenue(ctx context.Context, actor Actor, id string) error
	GetVenueByID(ctx context.Context, id string) (response_models.VenueResponse, error)
	ListOwnVenues(ctx context.Context, actor Actor) ([]response_models.VenueResponse, error)
}

type VenueService struct {
	venueRepo repositories.VenueRepository
}

func NewVenueService(venueRepo repositories.VenueRepository) VenueServiceInterface {
	return &VenueService{
		venueRepo: venueRepo,
	}
}

func (v *VenueService) CreateVenue(ctx context.Context, actor Actor, request request_models.CreateVenueRequest) (response_models.VenueResponse, error) {

	country := request.Country
	if country == "" {
		country = "Argentina"
	}

	newVenue := &db_models.Venue{
		ProviderID:  actor.ID,
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		City:        request.City,
		Province:    request.Province,
		PostalCode:  request.PostalCode,
		Country:     country,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Capacity:    request.Capacity,
		BasePrice:   request.BasePrice,
		Images:      request.Images,
		Included:    request.Included,
		Status:      db_models.StatusActive,
	}

	if _, err := v.venueRepo.Create(ctx, newVenue); err != nil {
		log.Printf("Error creating venue: %v", err)
		return response_models.VenueResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewVenueResponse(newVenue), nil
}

func (v *VenueService) UpdateVenue(ctx context.Context, actor Actor, id string, request request_models.UpdateVenueRequest) (response_models.VenueResponse, error) {
	existing, err := v.venueRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return response_models.VenueResponse{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.VenueResponse{}, utils.ErrVenueNotFound
	}

	if existing.ProviderID != actor.ID && !actor.IsAdmin() {
		return response_models.VenueResponse{}, utils.ErrNotOwner
	}

	if request.Name != nil {
		existing.Name = *request.Name
	}
	if request.Description != nil {
		existing.Description = *request.Description
	}
	if request.Address != nil {
		existing.Address = *request.Address
	}
	if request.City != nil {
		existing.City = *request.City
	}
	if request.Province != nil {
		existing.Province = *request.Province
	}
	if request.PostalCode != nil {
		existing.PostalCode = *request.PostalCode
	}
	if request.Country != nil {
		existing.Country = *request.Country
	}
	if request.Latitude != nil {
		existing.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		existing.Longitude = *request.Longitude
	}
	if request.Capacity != nil {
		existing.Capacity = *request.Capacity
	}
	if request.BasePrice != nil {
		existing.BasePrice = *request.BasePrice
	}
	if request.Images != nil {
		existing.Images = request.Images
	}
	if request.Included != nil {
		existing.Included = request.Included
	}

	if err := v.venueRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating venue: %v", err)
		return response_models.VenueResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewVenueResponse(existing), nil
}

// RetireVenue is the soft delete: the row stays, the status flips.
func (v *VenueService) RetireVenue(ctx context.Context, actor Actor, id string) error {
	existing, err := v.venueRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrVenueNotFound
	}

	if existing.ProviderID != actor.ID && !actor.IsAdmin() {
		return utils.ErrNotOwner
	}

	existing.Status = db_models.StatusRetired

	if err := v.venueRepo.Update(ctx, existing); err != nil {
		log.Printf("Error retiring venue: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (v *VenueService) GetVenueByID(ctx context.Context, id string) (response_models.VenueResponse, error) {
	venue, err := v.venueRepo.GetByIDWithProvider(ctx, id)
	if err != nil {
		return response_models.VenueResponse{}, utils.ErrDatabaseError
	}
	if venue == nil {
		return response_models.VenueResponse{}, utils.ErrVenueNotFound
	}

	resp := response_models.NewVenueResponse(venue)
	resp.Provider = response_models.NewProviderProfile(&venue.Provider)
	return resp, nil
}

func (v *VenueService) ListOwnVenues(ctx context.Context, actor Actor) ([]response_models.VenueResponse, error) {
	venues, err := v.venueRepo.ListByProvider(ctx, actor.ID)
	if err != nil {
		log.Printf("Error listing venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.VenueResponse, 0, len(venues))
	for i := range venues {
		results = append(results, response_models.NewVenueResponse(&venues[i]))
	}
	return results, nil
}
