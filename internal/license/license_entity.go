package license

import (
	"time"

	"github.com/google/uuid"
)

// ExpiringWindow is the lookahead for "expiring soon" queries. Licenses whose
// expiry falls on or before now+ExpiringWindow count as expiring, already
// expired ones included.
const ExpiringWindow = 30 * 24 * time.Hour

type License struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(150);not null"`
	LicenseNumber string    `gorm:"type:varchar(100)"`
	ExpiryDate    time.Time `gorm:"type:date;not null;index"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
	UpdatedAt     time.Time `gorm:"not null;default:now()"`
}

func (License) TableName() string {
	return "licenses"
}

// Details joins a license with its owning company name and the number of
// employees currently assigned to it.
type Details struct {
	License
	CompanyName   string
	EmployeeCount int64
}
