package document

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	FindAllByEntity(ctx context.Context, companyID uuid.UUID, entityType EntityType, entityID uuid.UUID) ([]Document, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Document, error)
	Delete(ctx context.Context, id, companyID uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *gormRepository) FindAllByEntity(ctx context.Context, companyID uuid.UUID, entityType EntityType, entityID uuid.UUID) ([]Document, error) {
	var documents []Document
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND entity_type = ? AND entity_id = ?", companyID, entityType, entityID).
		Order("created_at ASC").
		Find(&documents).Error
	return documents, err
}

func (r *gormRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *gormRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&Document{}).Error
}
