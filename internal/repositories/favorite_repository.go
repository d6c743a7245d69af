package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tusalon/internal/models/db_models"
)

type FavoriteRepository interface {
	// Insert returns gorm.ErrDuplicatedKey when the (account, kind,
	// item) unique index rejects the row.
	Insert(ctx context.Context, favorite *db_models.Favorite) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID, accountID uuid.UUID) error
	FindByID(ctx context.Context, id string) (*db_models.Favorite, error)
	FindByAccountAndItem(ctx context.Context, accountID uuid.UUID, kind db_models.ListingKind, itemID uuid.UUID) (*db_models.Favorite, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, kind db_models.ListingKind) ([]db_models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Insert(ctx context.Context, favorite *db_models.Favorite) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return uuid.Nil, err
	}
	return favorite.ID, nil
}

// Delete removes the row outright. Favorite has no DeletedAt column,
// so the unique index frees up and the item can be favorited again.
func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) FindByID(ctx context.Context, id string) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := r.db.WithContext(ctx).First(&favorite, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindByAccountAndItem(ctx context.Context, accountID uuid.UUID, kind db_models.ListingKind, itemID uuid.UUID) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND item_kind = ? AND item_id = ?", accountID, kind, itemID).
		First(&favorite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, kind db_models.ListingKind) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite

	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if kind != "" {
		q = q.Where("item_kind = ?", kind)
	}

	err := q.Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
