package services

import (
	"context"
	"log"
	"time"

	"tusalon/internal/models/db_models"
	"tusalon/internal/models/request_models"
	"tusalon/internal/models/response_models"
	"tusalon/internal/repositories"
	"tusalon/pkg/utils"
)

type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, actor Actor, request request_models.CreateInquiryRequest) (response_models.InquiryResponse, error)
	ListOwnInquiries(ctx context.Context, actor Actor, box string) ([]response_models.InquiryResponse, error)
	UpdateInquiry(ctx context.Context, actor Actor, id string, request request_models.UpdateInquiryRequest) (response_models.InquiryResponse, error)
}

type InquiryService struct {
	inquiryRepo repositories.InquiryRepository
	accountRepo repositories.AccountRepository
	venueRepo   repositories.VenueRepository
	serviceRepo repositories.ServiceRepository
	mailService IMailService
}

func NewInquiryService(
	inquiryRepo repositories.InquiryRepository,
	accountRepo repositories.AccountRepository,
	venueRepo repositories.VenueRepository,
	serviceRepo repositories.ServiceRepository,
	mailService IMailService,
) InquiryServiceInterface {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		accountRepo: accountRepo,
		venueRepo:   venueRepo,
		serviceRepo: serviceRepo,
		mailService: mailService,
	}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, actor Actor, request request_models.CreateInquiryRequest) (response_models.InquiryResponse, error) {

	kind := db_models.ListingKind(request.ListingKind)
	if !kind.Valid() {
		return response_models.InquiryResponse{}, utils.ErrInvalidListingKind
	}

	provider, err := s.accountRepo.FindById(ctx, request.ProviderID.String())
	if err != nil {
		return response_models.InquiryResponse{}, utils.ErrDatabaseError
	}
	if provider == nil {
		return response_models.InquiryResponse{}, utils.ErrAccountNotFound
	}

	listingName := ""
	if request.ListingID != nil {
		name, err := s.resolveListingName(ctx, kind, request.ListingID.String())
		if err != nil {
			return response_models.InquiryResponse{}, err
		}
		listingName = name
	}

	newInquiry := &db_models.Inquiry{
		ClientID:    actor.ID,
		ProviderID:  request.ProviderID,
		ListingKind: kind,
		ListingID:   request.ListingID,
		GuestCount:  request.GuestCount,
		Message:     request.Message,
		Status:      db_models.InquiryPending,
	}

	if request.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", request.EventDate)
		if err != nil {
			return response_models.InquiryResponse{}, utils.ErrInvalidEventDate
		}
		newInquiry.EventDate = &eventDate
	}

	if _, err := s.inquiryRepo.Insert(ctx, newInquiry); err != nil {
		log.Printf("Error creating inquiry: %v", err)
		return response_models.InquiryResponse{}, utils.ErrDatabaseError
	}

	// Best effort; a mail failure never fails the inquiry.
	client, err := s.accountRepo.FindById(ctx, actor.ID.String())
	if err == nil && client != nil {
		if mailErr := s.mailService.SendMailToNotifyInquiry(provider.Email, client.FirstName, listingName); mailErr != nil {
			log.Printf("Error sending inquiry mail: %v", mailErr)
		}
	}

	return response_models.NewInquiryResponse(newInquiry), nil
}

func (s *InquiryService) resolveListingName(ctx context.Context, kind db_models.ListingKind, id string) (string, error) {
	switch kind {
	case db_models.KindVenue:
		venue, err := s.venueRepo.GetByID(ctx, id)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if venue == nil {
			return "", utils.ErrVenueNotFound
		}
		return venue.Name, nil
	case db_models.KindService:
		service, err := s.serviceRepo.GetByID(ctx, id)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if service == nil {
			return "", utils.ErrServiceNotFound
		}
		return service.Name, nil
	}
	return "", utils.ErrInvalidListingKind
}

// ListOwnInquiries returns inquiries the actor sent or received. With
// no explicit box the role decides: clients see sent, providers see
// received.
func (s *InquiryService) ListOwnInquiries(ctx context.Context, actor Actor, box string) ([]response_models.InquiryResponse, error) {

	var (
		inquiries []db_models.Inquiry
		err       error
	)

	switch {
	case box == "sent" || (box == "" && actor.Role == db_models.RoleClient):
		inquiries, err = s.inquiryRepo.ListByClient(ctx, actor.ID)
	default:
		inquiries, err = s.inquiryRepo.ListByProvider(ctx, actor.ID)
	}

	if err != nil {
		log.Printf("Error listing inquiries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		resp := response_models.NewInquiryResponse(&inquiries[i])
		if inquiries[i].Client.ID != actor.ID && inquiries[i].Client.Email != "" {
			resp.Client = response_models.NewProviderProfile(&inquiries[i].Client)
		}
		if inquiries[i].Provider.ID != actor.ID && inquiries[i].Provider.Email != "" {
			resp.Provider = response_models.NewProviderProfile(&inquiries[i].Provider)
		}
		results = append(results, resp)
	}
	return results, nil
}

func (s *InquiryService) UpdateInquiry(ctx context.Context, actor Actor, id string, request request_models.UpdateInquiryRequest) (response_models.InquiryResponse, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching inquiry: %v", err)
		return response_models.InquiryResponse{}, utils.ErrDatabaseError
	}
	if inquiry == nil {
		return response_models.InquiryResponse{}, utils.ErrInquiryNotFound
	}

	if inquiry.ClientID != actor.ID && inquiry.ProviderID != actor.ID && !actor.IsAdmin() {
		return response_models.InquiryResponse{}, utils.ErrNotOwner
	}

	wasPending := inquiry.Status == db_models.InquiryPending

	if request.Status != nil {
		status := db_models.InquiryStatus(*request.Status)
		if !status.Valid() {
			return response_models.InquiryResponse{}, utils.ErrInvalidStatus
		}
		inquiry.Status = status
	}

	// A provider reply stamps the timestamp, and a reply on a pending
	// inquiry promotes it to contacted. Replies never move any other
	// status; a second reply cannot revert contacted/confirmed.
	if inquiry.ProviderID == actor.ID && request.ProviderReply != nil {
		now := time.Now()
		inquiry.ProviderReply = request.ProviderReply
		inquiry.RepliedAt = &now

		if wasPending {
			inquiry.Status = db_models.InquiryContacted
		}
	}

	if err := s.inquiryRepo.Update(ctx, inquiry); err != nil {
		log.Printf("Error updating inquiry: %v", err)
		return response_models.InquiryResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewInquiryResponse(inquiry), nil
}
