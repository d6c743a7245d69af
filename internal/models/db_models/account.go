package db_models

type AccountRole string

const (
	RoleProvider AccountRole = "provider"
	RoleClient   AccountRole = "client"
	RoleAdmin    AccountRole = "admin"
)

type Account struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"unique"`
	PasswordHash string
	Phone        string
	Role         AccountRole `gorm:"type:varchar(16);default:'client'"`
	Verified     bool
	Active       bool `gorm:"default:true"`

	Venues   []Venue   `gorm:"foreignKey:ProviderID"`
	Services []Service `gorm:"foreignKey:ProviderID"`
}
