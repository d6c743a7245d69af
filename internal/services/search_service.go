package services

import (
	"context"
	"log"

	"tusalon/internal/models/db_models"
	"tusalon/internal/models/response_models"
	"tusalon/internal/repositories"
	"tusalon/pkg/geo"
	"tusalon/pkg/utils"
)

// VenueSearchCriteria carries the optional search filters. Geo fields
// travel together: either all three are set or the search degrades to a
// plain attribute filter. Coordinates are assumed valid; the HTTP layer
// rejects out-of-range values before this service runs.
type VenueSearchCriteria struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	City        string
	MinCapacity *int
	MaxPrice    *float64
}

func (c VenueSearchCriteria) HasGeo() bool {
	return c.Latitude != nil && c.Longitude != nil && c.RadiusKm != nil
}

type ServiceSearchCriteria struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	City     string
	Category db_models.ServiceCategory
	MaxPrice *float64
}

func (c ServiceSearchCriteria) HasGeo() bool {
	return c.Latitude != nil && c.Longitude != nil && c.RadiusKm != nil
}

type SearchServiceInterface interface {
	SearchVenues(ctx context.Context, criteria VenueSearchCriteria) ([]response_models.VenueResponse, error)
	SearchServices(ctx context.Context, criteria ServiceSearchCriteria) ([]response_models.ServiceResponse, error)
}

type SearchService struct {
	venueRepo   repositories.VenueRepository
	serviceRepo repositories.ServiceRepository
}

func NewSearchService(venueRepo repositories.VenueRepository, serviceRepo repositories.ServiceRepository) SearchServiceInterface {
	return &SearchService{
		venueRepo:   venueRepo,
		serviceRepo: serviceRepo,
	}
}

// SearchVenues runs the two-phase search: a bounding-box SQL pre-filter
// to shrink the candidate set, then the exact Haversine pass that
// filters to the radius and sorts ascending by distance. Without geo
// criteria it returns active venues newest first, no distance attached.
func (s *SearchService) SearchVenues(ctx context.Context, criteria VenueSearchCriteria) ([]response_models.VenueResponse, error) {

	filter := repositories.VenueFilter{
		City:        criteria.City,
		MinCapacity: criteria.MinCapacity,
		MaxPrice:    criteria.MaxPrice,
	}

	if criteria.HasGeo() {
		box := geo.ComputeBoundingBox(*criteria.Latitude, *criteria.Longitude, *criteria.RadiusKm)
		filter.Box = &box
	}

	venues, err := s.venueRepo.SearchActive(ctx, filter)
	if err != nil {
		log.Printf("Error searching venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if !criteria.HasGeo() {
		results := make([]response_models.VenueResponse, 0, len(venues))
		for i := range venues {
			results = append(results, response_models.NewVenueResponse(&venues[i]))
		}
		return results, nil
	}

	ranked := geo.RankByDistance(venues, *criteria.Latitude, *criteria.Longitude, *criteria.RadiusKm)

	results := make([]response_models.VenueResponse, 0, len(ranked))
	for i := range ranked {
		resp := response_models.NewVenueResponse(&ranked[i].Item)
		d := ranked[i].DistanceKm
		resp.DistanceKm = &d
		results = append(results, resp)
	}
	return results, nil
}

func (s *SearchService) SearchServices(ctx context.Context, criteria ServiceSearchCriteria) ([]response_models.ServiceResponse, error) {

	filter := repositories.ServiceFilter{
		City:     criteria.City,
		Category: criteria.Category,
		MaxPrice: criteria.MaxPrice,
	}

	if criteria.HasGeo() {
		box := geo.ComputeBoundingBox(*criteria.Latitude, *criteria.Longitude, *criteria.RadiusKm)
		filter.Box = &box
	}

	services, err := s.serviceRepo.SearchActive(ctx, filter)
	if err != nil {
		log.Printf("Error searching services: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if !criteria.HasGeo() {
		results := make([]response_models.ServiceResponse, 0, len(services))
		for i := range services {
			results = append(results, response_models.NewServiceResponse(&services[i]))
		}
		return results, nil
	}

	ranked := geo.RankByDistance(services, *criteria.Latitude, *criteria.Longitude, *criteria.RadiusKm)

	results := make([]response_models.ServiceResponse, 0, len(ranked))
	for i := range ranked {
		resp := response_models.NewServiceResponse(&ranked[i].Item)
		d := ranked[i].DistanceKm
		resp.DistanceKm = &d
		results = append(results, resp)
	}
	return results, nil
}
