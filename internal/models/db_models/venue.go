package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Venue struct {
	BaseModel
	ProviderID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string `gorm:"type:text"`
	Address     string
	City        string `gorm:"index"`
	Province    string
	PostalCode  string
	Country     string  `gorm:"default:'Argentina'"`
	Latitude    float64 `gorm:"index"`
	Longitude   float64 `gorm:"index"`
	Capacity    int
	BasePrice   float64
	Images      pq.StringArray `gorm:"type:text[]"`
	Included    pq.StringArray `gorm:"type:text[]"`
	Status      ListingStatus  `gorm:"type:varchar(16);default:'active';index"`

	Provider Account `gorm:"foreignKey:ProviderID"`
}

func (v Venue) Coordinates() (float64, float64) {
	return v.Latitude, v.Longitude
}
