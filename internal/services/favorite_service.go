package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tusalon/internal/models/db_models"
	"tusalon/internal/models/request_models"
	"tusalon/internal/models/response_models"
	"tusalon/internal/repositories"
	"tusalon/pkg/utils"
)

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, actor Actor, request request_models.AddFavoriteRequest) (response_models.FavoriteResponse, error)
	RemoveFavorite(ctx context.Context, actor Actor, id uuid.UUID) error
	ListFavorites(ctx context.Context, actor Actor, kind string) ([]response_models.FavoriteResponse, error)
	CheckFavorite(ctx context.Context, actor Actor, kind string, itemID uuid.UUID) (response_models.FavoriteCheckResponse, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	venueRepo    repositories.VenueRepository
	serviceRepo  repositories.ServiceRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	venueRepo repositories.VenueRepository,
	serviceRepo repositories.ServiceRepository,
) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		venueRepo:    venueRepo,
		serviceRepo:  serviceRepo,
	}
}

func (s *FavoriteService) AddFavorite(ctx context.Context, actor Actor, request request_models.AddFavoriteRequest) (response_models.FavoriteResponse, error) {

	kind := db_models.ListingKind(request.ItemKind)
	if !kind.Valid() {
		return response_models.FavoriteResponse{}, utils.ErrInvalidListingKind
	}

	// The item id is not a foreign key; resolve it against the listing
	// table named by the kind before writing.
	if _, err := s.resolveItem(ctx, kind, request.ItemID); err != nil {
		return response_models.FavoriteResponse{}, err
	}

	newFavorite := &db_models.Favorite{
		AccountID: actor.ID,
		ItemKind:  kind,
		ItemID:    request.ItemID,
	}

	if _, err := s.favoriteRepo.Insert(ctx, newFavorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.FavoriteResponse{}, utils.ErrFavoriteExists
		}
		log.Printf("Error adding favorite: %v", err)
		return response_models.FavoriteResponse{}, utils.ErrDatabaseError
	}

	return response_models.FavoriteResponse{
		ID:        newFavorite.ID.String(),
		ItemKind:  string(newFavorite.ItemKind),
		ItemID:    newFavorite.ItemID.String(),
		CreatedAt: newFavorite.CreatedAt,
	}, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, actor Actor, id uuid.UUID) error {
	err := s.favoriteRepo.Delete(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrFavoriteNotFound
		}
		log.Printf("Error removing favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, actor Actor, kind string) ([]response_models.FavoriteResponse, error) {

	itemKind := db_models.ListingKind(kind)
	if kind != "" && !itemKind.Valid() {
		return nil, utils.ErrInvalidListingKind
	}

	favorites, err := s.favoriteRepo.ListByAccount(ctx, actor.ID, itemKind)
	if err != nil {
		log.Printf("Error listing favorites: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		fav := &favorites[i]
		resp := response_models.FavoriteResponse{
			ID:        fav.ID.String(),
			ItemKind:  string(fav.ItemKind),
			ItemID:    fav.ItemID.String(),
			CreatedAt: fav.CreatedAt,
		}

		// A listing that no longer resolves leaves Item nil rather than
		// failing the whole list.
		if item, err := s.resolveItem(ctx, fav.ItemKind, fav.ItemID); err == nil {
			resp.Item = item
		}

		results = append(results, resp)
	}
	return results, nil
}

func (s *FavoriteService) CheckFavorite(ctx context.Context, actor Actor, kind string, itemID uuid.UUID) (response_models.FavoriteCheckResponse, error) {

	itemKind := db_models.ListingKind(kind)
	if !itemKind.Valid() {
		return response_models.FavoriteCheckResponse{}, utils.ErrInvalidListingKind
	}

	favorite, err := s.favoriteRepo.FindByAccountAndItem(ctx, actor.ID, itemKind, itemID)
	if err != nil {
		log.Printf("Error checking favorite: %v", err)
		return response_models.FavoriteCheckResponse{}, utils.ErrDatabaseError
	}

	if favorite == nil {
		return response_models.FavoriteCheckResponse{IsFavorite: false}, nil
	}

	id := favorite.ID.String()
	return response_models.FavoriteCheckResponse{IsFavorite: true, FavoriteID: &id}, nil
}

// resolveItem looks up the referenced listing by (kind, id) and returns
// its response form with the provider embedded.
func (s *FavoriteService) resolveItem(ctx context.Context, kind db_models.ListingKind, itemID uuid.UUID) (interface{}, error) {
	switch kind {
	case db_models.KindVenue:
		venue, err := s.venueRepo.GetByIDWithProvider(ctx, itemID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if venue == nil {
			return nil, utils.ErrVenueNotFound
		}
		resp := response_models.NewVenueResponse(venue)
		resp.Provider = response_models.NewProviderProfile(&venue.Provider)
		return resp, nil

	case db_models.KindService:
		service, err := s.serviceRepo.GetByIDWithProvider(ctx, itemID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if service == nil {
			return nil, utils.ErrServiceNotFound
		}
		resp := response_models.NewServiceResponse(service)
		resp.Provider = response_models.NewProviderProfile(&service.Provider)
		return resp, nil
	}

	return nil, utils.ErrInvalidListingKind
}
