package companyuser

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *CompanyUser) error
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]CompanyUser, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]CompanyUser, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*CompanyUser, error)
	FindByUserAndCompany(ctx context.Context, userID, companyID uuid.UUID) (*CompanyUser, error)
	Update(ctx context.Context, m *CompanyUser) error
	Delete(ctx context.Context, id, companyID uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, m *CompanyUser) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormRepository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]CompanyUser, error) {
	var members []CompanyUser
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *gormRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]CompanyUser, error) {
	var members []CompanyUser
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *gormRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*CompanyUser, error) {
	var m CompanyUser
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) FindByUserAndCompany(ctx context.Context, userID, companyID uuid.UUID) (*CompanyUser, error) {
	var m CompanyUser
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) Update(ctx context.Context, m *CompanyUser) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *gormRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&CompanyUser{}).Error
}
