package employee

import (
	"context"

	"go-hradmin/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	// FindAllByCompany returns the company's employees in insertion order.
	// Archived rows are excluded unless includeArchived is set.
	FindAllByCompany(ctx context.Context, companyID string, includeArchived bool) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	Update(ctx context.Context, employee *Employee) error
	LicenseBelongsToCompany(ctx context.Context, companyID, licenseID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, includeArchived bool) ([]Employee, error) {
	var employees []Employee
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if !includeArchived {
		q = q.Where("status <> ?", StatusArchived)
	}
	err := q.Order("created_at ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) Update(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *repository) LicenseBelongsToCompany(ctx context.Context, companyID, licenseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("licenses").
		Where("company_id = ? AND id = ?", companyID, licenseID).
		Count(&count).Error
	return count > 0, err
}
