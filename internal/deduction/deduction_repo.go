package deduction

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *Deduction) error
	FindAllByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]Deduction, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Deduction, error)
	Update(ctx context.Context, d *Deduction) error
	Delete(ctx context.Context, id, companyID uuid.UUID) error
	EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, d *Deduction) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *gormRepository) FindAllByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) ([]Deduction, error) {
	var deductions []Deduction
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Order("created_at ASC").
		Find(&deductions).Error
	return deductions, err
}

func (r *gormRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Deduction, error) {
	var d Deduction
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *gormRepository) Update(ctx context.Context, d *Deduction) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *gormRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&Deduction{}).Error
}

func (r *gormRepository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ?", employeeID, companyID).
		Count(&count).Error
	return count > 0, err
}
