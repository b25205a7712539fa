package violation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, v *Violation) error
	FindAllByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]Violation, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Violation, error)
	Update(ctx context.Context, v *Violation) error
	Delete(ctx context.Context, id, companyID uuid.UUID) error
	EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, v *Violation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *gormRepository) FindAllByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]Violation, error) {
	var violations []Violation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Order("created_at ASC").
		Find(&violations).Error
	return violations, err
}

func (r *gormRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Violation, error) {
	var v Violation
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *gormRepository) Update(ctx context.Context, v *Violation) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *gormRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&Violation{}).Error
}

func (r *gormRepository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ?", employeeID, companyID).
		Count(&count).Error
	return count > 0, err
}
