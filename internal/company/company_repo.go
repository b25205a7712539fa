package company

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, company *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error

	// HasDependents reports whether any employee or license still references
	// the company. Deletion is refused while it does.
	HasDependents(ctx context.Context, companyID string) (bool, error)

	CountEmployees(ctx context.Context, companyID string) (int64, error)
	CountActiveEmployees(ctx context.Context, companyID string) (int64, error)
	CountPendingLeaves(ctx context.Context, companyID string) (int64, error)
	CountExpiringLicenses(ctx context.Context, companyID string, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Company{}, "id = ?", id).Error
}

func (r *repository) HasDependents(ctx context.Context, companyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT (SELECT COUNT(*) FROM employees WHERE company_id = ?)
			     + (SELECT COUNT(*) FROM licenses WHERE company_id = ?)
		`, companyID, companyID).
		Scan(&count).Error
	return count > 0, err
}

func (r *repository) CountEmployees(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountActiveEmployees(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("company_id = ? AND status = ?", companyID, "active").
		Count(&count).Error
	return count, err
}

func (r *repository) CountPendingLeaves(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leaves").
		Where("company_id = ? AND status = ?", companyID, "pending").
		Count(&count).Error
	return count, err
}

func (r *repository) CountExpiringLicenses(ctx context.Context, companyID string, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("licenses").
		Where("company_id = ? AND expiry_date <= ?", companyID, cutoff).
		Count(&count).Error
	return count, err
}
