package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tusalon/internal/models/db_models"
)

type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *db_models.Inquiry) (uuid.UUID, error)
	Update(ctx context.Context, inquiry *db_models.Inquiry) error
	FindByID(ctx context.Context, id string) (*db_models.Inquiry, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.Inquiry, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]db_models.Inquiry, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Insert(ctx context.Context, inquiry *db_models.Inquiry) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return uuid.Nil, err
	}
	return inquiry.ID, nil
}

func (r *inquiryRepository) Update(ctx context.Context, inquiry *db_models.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}

func (r *inquiryRepository) FindByID(ctx context.Context, id string) (*db_models.Inquiry, error) {
	var inquiry db_models.Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.Inquiry, error) {
	var inquiries []db_models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]db_models.Inquiry, error) {
	var inquiries []db_models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}
