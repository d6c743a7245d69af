package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tusalon/internal/models/db_models"
	"tusalon/internal/repositories"
)

// In-memory repository fakes shared by the service tests. They mirror
// the repository contracts: lookups return (nil, nil) when the row does
// not exist, and the favorite insert reports duplicates the way the
// translated gorm error does.

type fakeVenueRepo struct {
	venues    []db_models.Venue
	createErr error
	updateErr error
}

func (f *fakeVenueRepo) Create(_ context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	f.venues = append(f.venues, *venue)
	return venue.ID, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, venue *db_models.Venue) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.venues {
		if f.venues[i].ID == venue.ID {
			f.venues[i] = *venue
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id string) (*db_models.Venue, error) {
	for i := range f.venues {
		if f.venues[i].ID.String() == id {
			v := f.venues[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) GetByIDWithProvider(ctx context.Context, id string) (*db_models.Venue, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeVenueRepo) SearchActive(_ context.Context, filter repositories.VenueFilter) ([]db_models.Venue, error) {
	var out []db_models.Venue
	for _, v := range f.venues {
		if v.Status != db_models.StatusActive {
			continue
		}
		if filter.Box != nil {
			if v.Latitude < filter.Box.MinLat || v.Latitude > filter.Box.MaxLat ||
				v.Longitude < filter.Box.MinLon || v.Longitude > filter.Box.MaxLon {
				continue
			}
		}
		if filter.City != "" && v.City != filter.City {
			continue
		}
		if filter.MinCapacity != nil && v.Capacity < *filter.MinCapacity {
			continue
		}
		if filter.MaxPrice != nil && v.BasePrice > *filter.MaxPrice {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVenueRepo) ListByProvider(_ context.Context, providerID uuid.UUID) ([]db_models.Venue, error) {
	var out []db_models.Venue
	for _, v := range f.venues {
		if v.ProviderID == providerID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	services []db_models.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, service *db_models.Service) (uuid.UUID, error) {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	f.services = append(f.services, *service)
	return service.ID, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, service *db_models.Service) error {
	for i := range f.services {
		if f.services[i].ID == service.ID {
			f.services[i] = *service
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*db_models.Service, error) {
	for i := range f.services {
		if f.services[i].ID.String() == id {
			s := f.services[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) GetByIDWithProvider(ctx context.Context, id string) (*db_models.Service, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeServiceRepo) SearchActive(_ context.Context, filter repositories.ServiceFilter) ([]db_models.Service, error) {
	var out []db_models.Service
	for _, s := range f.services {
		if s.Status != db_models.StatusActive {
			continue
		}
		if filter.Box != nil {
			if s.Latitude < filter.Box.MinLat || s.Latitude > filter.Box.MaxLat ||
				s.Longitude < filter.Box.MinLon || s.Longitude > filter.Box.MaxLon {
				continue
			}
		}
		if filter.City != "" && s.City != filter.City {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.MaxPrice != nil && s.StartingPrice > *filter.MaxPrice {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) ListByProvider(_ context.Context, providerID uuid.UUID) ([]db_models.Service, error) {
	var out []db_models.Service
	for _, s := range f.services {
		if s.ProviderID == providerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts []db_models.Account
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts = append(f.accounts, *account)
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	for i := range f.accounts {
		if f.accounts[i].ID == account.ID {
			f.accounts[i] = *account
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].ID.String() == id {
			a := f.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].Email == email {
			a := f.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

type fakeInquiryRepo struct {
	inquiries []db_models.Inquiry
}

func (f *fakeInquiryRepo) Insert(_ context.Context, inquiry *db_models.Inquiry) (uuid.UUID, error) {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	f.inquiries = append(f.inquiries, *inquiry)
	return inquiry.ID, nil
}

func (f *fakeInquiryRepo) Update(_ context.Context, inquiry *db_models.Inquiry) error {
	for i := range f.inquiries {
		if f.inquiries[i].ID == inquiry.ID {
			f.inquiries[i] = *inquiry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeInquiryRepo) FindByID(_ context.Context, id string) (*db_models.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID.String() == id {
			inq := f.inquiries[i]
			return &inq, nil
		}
	}
	return nil, nil
}

func (f *fakeInquiryRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]db_models.Inquiry, error) {
	var out []db_models.Inquiry
	for _, inq := range f.inquiries {
		if inq.ClientID == clientID {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (f *fakeInquiryRepo) ListByProvider(_ context.Context, providerID uuid.UUID) ([]db_models.Inquiry, error) {
	var out []db_models.Inquiry
	for _, inq := range f.inquiries {
		if inq.ProviderID == providerID {
			out = append(out, inq)
		}
	}
	return out, nil
}

type fakeFavoriteRepo struct {
	favorites []db_models.Favorite
}

func (f *fakeFavoriteRepo) Insert(_ context.Context, favorite *db_models.Favorite) (uuid.UUID, error) {
	for _, existing := range f.favorites {
		if existing.AccountID == favorite.AccountID &&
			existing.ItemKind == favorite.ItemKind &&
			existing.ItemID == favorite.ItemID {
			return uuid.Nil, gorm.ErrDuplicatedKey
		}
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	f.favorites = append(f.favorites, *favorite)
	return favorite.ID, nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, id uuid.UUID, accountID uuid.UUID) error {
	for i := range f.favorites {
		if f.favorites[i].ID == id && f.favorites[i].AccountID == accountID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFavoriteRepo) FindByID(_ context.Context, id string) (*db_models.Favorite, error) {
	for i := range f.favorites {
		if f.favorites[i].ID.String() == id {
			fav := f.favorites[i]
			return &fav, nil
		}
	}
	return nil, nil
}

func (f *fakeFavoriteRepo) FindByAccountAndItem(_ context.Context, accountID uuid.UUID, kind db_models.ListingKind, itemID uuid.UUID) (*db_models.Favorite, error) {
	for i := range f.favorites {
		if f.favorites[i].AccountID == accountID &&
			f.favorites[i].ItemKind == kind &&
			f.favorites[i].ItemID == itemID {
			fav := f.favorites[i]
			return &fav, nil
		}
	}
	return nil, nil
}

func (f *fakeFavoriteRepo) ListByAccount(_ context.Context, accountID uuid.UUID, kind db_models.ListingKind) ([]db_models.Favorite, error) {
	var out []db_models.Favorite
	for _, fav := range f.favorites {
		if fav.AccountID != accountID {
			continue
		}
		if kind != "" && fav.ItemKind != kind {
			continue
		}
		out = append(out, fav)
	}
	return out, nil
}

type fakeMailService struct {
	resetMails   []string
	inquiryMails []string
}

func (f *fakeMailService) SendMailToResetPassword(to, _ string) error {
	f.resetMails = append(f.resetMails, to)
	return nil
}

func (f *fakeMailService) SendMailToNotifyInquiry(to, _, _ string) error {
	f.inquiryMails = append(f.inquiryMails, to)
	return nil
}
