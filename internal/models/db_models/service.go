package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ServiceCategory string

const (
	CategoryPhotography    ServiceCategory = "photography"
	CategoryDJ             ServiceCategory = "dj"
	CategoryWeddingPlanner ServiceCategory = "wedding_planner"
	CategoryCatering       ServiceCategory = "catering"
	CategoryDecoration     ServiceCategory = "decoration"
	CategoryMusic          ServiceCategory = "music"
	CategoryVideo          ServiceCategory = "video"
	CategoryFlowers        ServiceCategory = "flowers"
	CategoryTransport      ServiceCategory = "transport"
	CategoryEntertainment  ServiceCategory = "entertainment"
	CategoryOther          ServiceCategory = "other"
)

var serviceCategories = map[ServiceCategory]bool{
	CategoryPhotography:    true,
	CategoryDJ:             true,
	CategoryWeddingPlanner: true,
	CategoryCatering:       true,
	CategoryDecoration:     true,
	CategoryMusic:          true,
	CategoryVideo:          true,
	CategoryFlowers:        true,
	CategoryTransport:      true,
	CategoryEntertainment:  true,
	CategoryOther:          true,
}

func (c ServiceCategory) Valid() bool {
	return serviceCategories[c]
}

// Service is a provider-offered event service listing (catering, dj,
// photography, ...). Venues live in their own table; see ListingKind
// for the places both are referenced polymorphically.
type Service struct {
	BaseModel
	ProviderID    uuid.UUID       `gorm:"type:uuid;index"`
	Category      ServiceCategory `gorm:"type:varchar(32);index"`
	Name          string
	Description   string `gorm:"type:text"`
	City          string `gorm:"index"`
	Province      string
	Country       string  `gorm:"default:'Argentina'"`
	Latitude      float64 `gorm:"index"`
	Longitude     float64 `gorm:"index"`
	StartingPrice float64
	Images        pq.StringArray `gorm:"type:text[]"`
	ContactEmail  string
	ContactPhone  string
	Website       string
	Status        ListingStatus `gorm:"type:varchar(16);default:'active';index"`

	Provider Account `gorm:"foreignKey:ProviderID"`
}

func (s Service) Coordinates() (float64, float64) {
	return s.Latitude, s.Longitude
}
