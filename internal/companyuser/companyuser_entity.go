package companyuser

import (
	"time"

	"github.com/google/uuid"
)

// CompanyUser links a user to a company with a role and optional
// fine-grained permission overrides ("resource:action" strings).
type CompanyUser struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_company_user"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_company_user"`
	Role        string    `gorm:"type:varchar(50);not null"`
	Permissions []string  `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CompanyUser) TableName() string {
	return "company_users"
}
