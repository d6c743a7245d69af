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

type ServiceServiceInterface interface {
	CreateService(ctx context.Context, actor Actor, request request_models.CreateServiceRequest) (response_models.ServiceResponse, error)
	UpdateService(ctx context.Context, actor Actor, id string, request request_models.UpdateServiceRequest) (response_models.ServiceResponse, error)
	RetireService(ctx context.Context, actor Actor, id string) error
	GetServiceByID(ctx context.Context, id string) (response_models.ServiceResponse, error)
	ListOwnServices(ctx context.Context, actor Actor) ([]response_models.ServiceResponse, error)
}

type ServiceService struct {
	serviceRepo repositories.ServiceRepository
}

func NewServiceService(serviceRepo repositories.ServiceRepository) ServiceServiceInterface {
	return &ServiceService{
		serviceRepo: serviceRepo,
	}
}

func (s *ServiceService) CreateService(ctx context.Context, actor Actor, request request_models.CreateServiceRequest) (response_models.ServiceResponse, error) {

	category := db_models.ServiceCategory(request.Category)
	if !category.Valid() {
		return response_models.ServiceResponse{}, utils.ErrInvalidCategory
	}

	country := request.Country
	if country == "" {
		country = "Argentina"
	}

	newService := &db_models.Service{
		ProviderID:    actor.ID,
		Category:      category,
		Name:          request.Name,
		Description:   request.Description,
		City:          request.City,
		Province:      request.Province,
		Country:       country,
		Latitude:      request.Latitude,
		Longitude:     request.Longitude,
		StartingPrice: request.StartingPrice,
		Images:        request.Images,
		ContactEmail:  request.ContactEmail,
		ContactPhone:  request.ContactPhone,
		Website:       request.Website,
		Status:        db_models.StatusActive,
	}

	if _, err := s.serviceRepo.Create(ctx, newService); err != nil {
		log.Printf("Error creating service: %v", err)
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewServiceResponse(newService), nil
}

func (s *ServiceService) UpdateService(ctx context.Context, actor Actor, id string, request request_models.UpdateServiceRequest) (response_models.ServiceResponse, error) {
	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching service: %v", err)
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.ServiceResponse{}, utils.ErrServiceNotFound
	}

	if existing.ProviderID != actor.ID && !actor.IsAdmin() {
		return response_models.ServiceResponse{}, utils.ErrNotOwner
	}

	if request.Category != nil {
		category := db_models.ServiceCategory(*request.Category)
		if !category.Valid() {
			return response_models.ServiceResponse{}, utils.ErrInvalidCategory
		}
		existing.Category = category
	}
	if request.Name != nil {
		existing.Name = *request.Name
	}
	if request.Description != nil {
		existing.Description = *request.Description
	}
	if request.City != nil {
		existing.City = *request.City
	}
	if request.Province != nil {
		existing.Province = *request.Province
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
	if request.StartingPrice != nil {
		existing.StartingPrice = *request.StartingPrice
	}
	if request.Images != nil {
		existing.Images = request.Images
	}
	if request.ContactEmail != nil {
		existing.ContactEmail = *request.ContactEmail
	}
	if request.ContactPhone != nil {
		existing.ContactPhone = *request.ContactPhone
	}
	if request.Website != nil {
		existing.Website = *request.Website
	}

	if err := s.serviceRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating service: %v", err)
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewServiceResponse(existing), nil
}

func (s *ServiceService) RetireService(ctx context.Context, actor Actor, id string) error {
	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching service: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrServiceNotFound
	}

	if existing.ProviderID != actor.ID && !actor.IsAdmin() {
		return utils.ErrNotOwner
	}

	existing.Status = db_models.StatusRetired

	if err := s.serviceRepo.Update(ctx, existing); err != nil {
		log.Printf("Error retiring service: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *ServiceService) GetServiceByID(ctx context.Context, id string) (response_models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByIDWithProvider(ctx, id)
	if err != nil {
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}
	if service == nil {
		return response_models.ServiceResponse{}, utils.ErrServiceNotFound
	}

	resp := response_models.NewServiceResponse(service)
	resp.Provider = response_models.NewProviderProfile(&service.Provider)
	return resp, nil
}

func (s *ServiceService) ListOwnServices(ctx context.Context, actor Actor) ([]response_models.ServiceResponse, error) {
	services, err := s.serviceRepo.ListByProvider(ctx, actor.ID)
	if err != nil {
		log.Printf("Error listing services: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.ServiceResponse, 0, len(services))
	for i := range services {
		results = append(results, response_models.NewServiceResponse(&services[i]))
	}
	return results, nil
}
