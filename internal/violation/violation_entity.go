package violation

import (
	"time"

	"github.com/google/uuid"
)

type Violation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Severity    string    `gorm:"type:varchar(20);not null"`
	OccurredAt  time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Violation) TableName() string {
	return "employee_violations"
}
