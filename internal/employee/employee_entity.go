package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	LicenseID      *uuid.UUID `gorm:"type:uuid;index"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex:uq_employee_email"`
	EmployeeNumber string     `gorm:"type:varchar(30);uniqueIndex:uq_employee_number"`
	Position       string     `gorm:"type:varchar(100)"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active';index"`
	ArchivedAt     *time.Time
	ArchiveReason  *string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}
