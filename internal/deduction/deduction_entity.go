package deduction

import (
	"time"

	"github.com/google/uuid"
)

type Deduction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Deduction) TableName() string {
	return "employee_deductions"
}
