package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tusalon/internal/models/db_models"
	"tusalon/pkg/geo"
)

type ServiceFilter struct {
	Box      *geo.BoundingBox
	City     string
	Category db_models.ServiceCategory
	MaxPrice *float64
}

type ServiceRepository interface {
	Create(ctx context.Context, service *db_models.Service) (uuid.UUID, error)
	Update(ctx context.Context, service *db_models.Service) error

	GetByID(ctx context.Context, id string) (*db_models.Service, error)
	GetByIDWithProvider(ctx context.Context, id string) (*db_models.Service, error)
	SearchActive(ctx context.Context, filter ServiceFilter) ([]db_models.Service, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]db_models.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *db_models.Service) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return uuid.Nil, err
	}
	return service.ID, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *db_models.Service) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(service)
		if result.Error != nil {
			return fmt.Errorf("failed to update service: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*db_models.Service, error) {
	var service db_models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) GetByIDWithProvider(ctx context.Context, id string) (*db_models.Service, error) {
	var service db_models.Service
	err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&service, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) SearchActive(ctx context.Context, filter ServiceFilter) ([]db_models.Service, error) {
	var services []db_models.Service

	q := r.db.WithContext(ctx).Where("status = ?", db_models.StatusActive)

	if filter.Box != nil {
		q = q.Where("latitude BETWEEN ? AND ?", filter.Box.MinLat, filter.Box.MaxLat).
			Where("longitude BETWEEN ? AND ?", filter.Box.MinLon, filter.Box.MaxLon)
	} else {
		q = q.Order("created_at DESC")
	}

	if filter.City != "" {
		q = q.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MaxPrice != nil {
		q = q.Where("starting_price <= ?", *filter.MaxPrice)
	}

	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]db_models.Service, error) {
	var services []db_models.Service
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
