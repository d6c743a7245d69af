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

// VenueFilter is the coarse pre-filter applied in SQL before the exact
// distance pass. A nil Box means no geographic constraint; results are
// then returned newest first.
type VenueFilter struct {
	Box         *geo.BoundingBox
	City        string
	MinCapacity *int
	MaxPrice    *float64
}

type VenueRepository interface {
	Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error)
	Update(ctx context.Context, venue *db_models.Venue) error

	GetByID(ctx context.Context, id string) (*db_models.Venue, error)
	GetByIDWithProvider(ctx context.Context, id string) (*db_models.Venue, error)
	SearchActive(ctx context.Context, filter VenueFilter) ([]db_models.Venue, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]db_models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return uuid.Nil, err
	}
	return venue.ID, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *db_models.Venue) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(venue)
		if result.Error != nil {
			return fmt.Errorf("failed to update venue: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// Read helpers return a nil value and nil error when no row is found.

func (r *venueRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) GetByIDWithProvider(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&venue, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) SearchActive(ctx context.Context, filter VenueFilter) ([]db_models.Venue, error) {
	var venues []db_models.Venue

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
	if filter.MinCapacity != nil {
		q = q.Where("capacity >= ?", *filter.MinCapacity)
	}
	if filter.MaxPrice != nil {
		q = q.Where("base_price <= ?", *filter.MaxPrice)
	}

	if err := q.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
