package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"tusalon/internal/models/db_models"
	"tusalon/internal/models/request_models"
	"tusalon/pkg/utils"
)

func newInquiryFixture() (*fakeInquiryRepo, *fakeAccountRepo, *fakeVenueRepo, *fakeMailService, InquiryServiceInterface, db_models.Account, db_models.Account) {
	provider := db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "provider@example.com",
		FirstName: "Paula",
		Role:      db_models.RoleProvider,
		Active:    true,
	}
	client := db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "client@example.com",
		FirstName: "Carlos",
		Role:      db_models.RoleClient,
		Active:    true,
	}

	inquiryRepo := &fakeInquiryRepo{}
	accountRepo := &fakeAccountRepo{accounts: []db_models.Account{provider, client}}
	venueRepo := &fakeVenueRepo{}
	mail := &fakeMailService{}

	svc := NewInquiryService(inquiryRepo, accountRepo, venueRepo, &fakeServiceRepo{}, mail)
	return inquiryRepo, accountRepo, venueRepo, mail, svc, provider, client
}

func TestCreateInquiryStartsPending(t *testing.T) {
	inquiryRepo, _, venueRepo, mail, svc, provider, client := newInquiryFixture()

	venue := db_models.Venue{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		ProviderID: provider.ID,
		Name:       "Salon Central",
		Status:     db_models.StatusActive,
	}
	venueRepo.venues = append(venueRepo.venues, venue)

	resp, err := svc.CreateInquiry(context.Background(), Actor{ID: client.ID, Role: db_models.RoleClient},
		request_models.CreateInquiryRequest{
			ProviderID:  provider.ID,
			ListingKind: "venue",
			ListingID:   &venue.ID,
			EventDate:   "2026-12-20",
			Message:     "Is the venue free on the 20th?",
		})
	if err != nil {
		t.Fatalf("CreateInquiry: %v", err)
	}

	if resp.Status != string(db_models.InquiryPending) {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if len(inquiryRepo.inquiries) != 1 {
		t.Fatalf("stored %d inquiries, want 1", len(inquiryRepo.inquiries))
	}
	if len(mail.inquiryMails) != 1 || mail.inquiryMails[0] != provider.Email {
		t.Errorf("provider notification mail not sent")
	}
}

func TestCreateInquiryMalformedEventDate(t *testing.T) {
	_, _, _, _, svc, provider, client := newInquiryFixture()

	_, err := svc.CreateInquiry(context.Background(), Actor{ID: client.ID, Role: db_models.RoleClient},
		request_models.CreateInquiryRequest{
			ProviderID:  provider.ID,
			ListingKind: "service",
			EventDate:   "20-12-2026",
			Message:     "hola",
		})
	if !errors.Is(err, utils.ErrInvalidEventDate) {
		t.Errorf("err = %v, want ErrInvalidEventDate", err)
	}
}

func TestCreateInquiryUnknownListing(t *testing.T) {
	_, _, _, _, svc, provider, client := newInquiryFixture()

	missing := uuid.New()
	_, err := svc.CreateInquiry(context.Background(), Actor{ID: client.ID, Role: db_models.RoleClient},
		request_models.CreateInquiryRequest{
			ProviderID:  provider.ID,
			ListingKind: "venue",
			ListingID:   &missing,
			Message:     "hola",
		})
	if !errors.Is(err, utils.ErrVenueNotFound) {
		t.Errorf("err = %v, want ErrVenueNotFound", err)
	}
}

func TestCreateInquiryUnknownProvider(t *testing.T) {
	_, _, _, _, svc, _, client := newInquiryFixture()

	_, err := svc.CreateInquiry(context.Background(), Actor{ID: client.ID, Role: db_models.RoleClient},
		request_models.CreateInquiryRequest{
			ProviderID:  uuid.New(),
			ListingKind: "service",
			Message:     "hola",
		})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestUpdateInquiryReplyPromotesPending(t *testing.T) {
	inquiryRepo, _, _, _, svc, provider, client := newInquiryFixture()

	inquiry := db_models.Inquiry{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		ClientID:    client.ID,
		ProviderID:  provider.ID,
		ListingKind: db_models.KindVenue,
		Status:      db_models.InquiryPending,
	}
	inquiryRepo.inquiries = append(inquiryRepo.inquiries, inquiry)

	reply := "We have that date available."
	resp, err := svc.UpdateInquiry(context.Background(), Actor{ID: provider.ID, Role: db_models.RoleProvider},
		inquiry.ID.String(), request_models.UpdateInquiryRequest{ProviderReply: &reply})
	if err != nil {
		t.Fatalf("UpdateInquiry: %v", err)
	}

	if resp.Status != string(db_models.InquiryContacted) {
		t.Errorf("status = %s, want contacted after first reply", resp.Status)
	}
	if resp.ProviderReply == nil || *resp.ProviderReply != reply {
		t.Errorf("reply not stored")
	}
	if resp.RepliedAt == "" {
		t.Errorf("replied_at not stamped")
	}
}

func TestUpdateInquiryReplyDoesNotRevertStatus(t *testing.T) {
	inquiryRepo, _, _, _, svc, provider, client := newInquiryFixture()

	inquiry := db_models.Inquiry{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		ClientID:    client.ID,
		ProviderID:  provider.ID,
		ListingKind: db_models.KindVenue,
		Status:      db_models.InquiryConfirmed,
	}
	inquiryRepo.inquiries = append(inquiryRepo.inquiries, inquiry)

	reply := "See you then."
	resp, err := svc.UpdateInquiry(context.Background(), Actor{ID: provider.ID, Role: db_models.RoleProvider},
		inquiry.ID.String(), request_models.UpdateInquiryRequest{ProviderReply: &reply})
	if err != nil {
		t.Fatalf("UpdateInquiry: %v", err)
	}

	if resp.Status != string(db_models.InquiryConfirmed) {
		t.Errorf("status = %s, a later reply must not revert confirmed", resp.Status)
	}
}

func TestUpdateInquiryReplyPromotionOverridesExplicitStatus(t *testing.T) {
	inquiryRepo, _, _, _, svc, provider, client := newInquiryFixture()

	inquiry := db_models.Inquiry{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		ClientID:    client.ID,
		ProviderID:  provider.ID,
		ListingKind: db_models.KindService,
		Status:      db_models.InquiryPending,
	}
	inquiryRepo.inquiries = append(inquiryRepo.inquiries, inquiry)

	// A reply on a pending inquiry promotes to contacted even when the
	// request also carries an explicit status.
	status := string(db_models.InquiryCancelled)
	reply := "Sorry, we are booked."
	resp, err := svc.UpdateInquiry(context.Background(), Actor{ID: provider.ID, Role: db_models.RoleProvider},
		inquiry.ID.String(), request_models.UpdateInquiryRequest{Status: &status, ProviderReply: &reply})
	if err != nil {
		t.Fatalf("UpdateInquiry: %v", err)
	}
	if resp.Status != string(db_models.InquiryContacted) {
		t.Errorf("status = %s, want contacted", resp.Status)
	}
}

func TestUpdateInquiryThirdPartyRejected(t *testing.T) {
	inquiryRepo, _, _, _, svc, provider, client := newInquiryFixture()

	inquiry := db_models.Inquiry{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		ClientID:    client.ID,
		ProviderID:  provider.ID,
		ListingKind: db_models.KindVenue,
		Status:      db_models.InquiryPending,
	}
	inquiryRepo.inquiries = append(inquiryRepo.inquiries, inquiry)

	status := string(db_models.InquiryCancelled)
	_, err := svc.UpdateInquiry(context.Background(), Actor{ID: uuid.New(), Role: db_models.RoleClient},
		inquiry.ID.String(), request_models.UpdateInquiryRequest{Status: &status})
	if !errors.Is(err, utils.ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
}

func TestListOwnInquiriesByRole(t *testing.T) {
	inquiryRepo, _, _, _, svc, provider, client := newInquiryFixture()

	inquiryRepo.inquiries = append(inquiryRepo.inquiries, db_models.Inquiry{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		ClientID:   client.ID,
		ProviderID: provider.ID,
		Status:     db_models.InquiryPending,
	})

	sent, err := svc.ListOwnInquiries(context.Background(), Actor{ID: client.ID, Role: db_models.RoleClient}, "")
	if err != nil {
		t.Fatalf("ListOwnInquiries: %v", err)
	}
	if len(sent) != 1 {
		t.Errorf("client sees %d inquiries, want 1", len(sent))
	}

	received, err := svc.ListOwnInquiries(context.Background(), Actor{ID: provider.ID, Role: db_models.RoleProvider}, "")
	if err != nil {
		t.Fatalf("ListOwnInquiries: %v", err)
	}
	if len(received) != 1 {
		t.Errorf("provider sees %d inquiries, want 1", len(received))
	}

	other, err := svc.ListOwnInquiries(context.Background(), Actor{ID: uuid.New(), Role: db_models.RoleClient}, "")
	if err != nil {
		t.Fatalf("ListOwnInquiries: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("unrelated account sees %d inquiries, want 0", len(other))
	}
}
