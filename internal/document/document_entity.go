package document

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of record a document is attached to.
type EntityType string

const (
	EntityEmployee EntityType = "employee"
	EntityCompany  EntityType = "company"
	EntityLicense  EntityType = "license"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityEmployee, EntityCompany, EntityLicense:
		return true
	}
	return false
}

type Document struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	EntityType EntityType `gorm:"type:varchar(20);not null;index:idx_document_entity"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_document_entity"`
	FileName   string     `gorm:"type:varchar(255);not null"`
	FileType   string     `gorm:"type:varchar(100)"`
	FileSize   int64      `gorm:"not null;default:0"`
	UploadedBy uuid.UUID  `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Document) TableName() string {
	return "documents"
}
