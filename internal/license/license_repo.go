package license

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=license_repo.go -destination=mock/license_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, license *License) error
	FindAllByCompany(ctx context.Context, companyID string) ([]License, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*License, error)
	FindDetails(ctx context.Context, companyID, id string) (*Details, error)
	FindExpiring(ctx context.Context, companyID string, cutoff time.Time) ([]License, error)
	Update(ctx context.Context, license *License) error
	// Delete removes the license and clears the assignment on employees that
	// referenced it. Missing ids are a no-op.
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, license *License) error {
	return r.db.WithContext(ctx).Create(license).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]License, error) {
	var licenses []License
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&licenses).Error
	return licenses, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*License, error) {
	var license License
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&license).Error
	if err != nil {
		return nil, err
	}
	return &license, nil
}

func (r *repository) FindDetails(ctx context.Context, companyID, id string) (*Details, error) {
	license, err := r.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	details := Details{License: *license}

	err = r.db.WithContext(ctx).
		Table("companies").
		Select("name").
		Where("id = ?", companyID).
		Scan(&details.CompanyName).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Table("employees").
		Where("license_id = ?", id).
		Count(&details.EmployeeCount).Error
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (r *repository) FindExpiring(ctx context.Context, companyID string, cutoff time.Time) ([]License, error) {
	var licenses []License
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND expiry_date <= ?", companyID, cutoff).
		Order("expiry_date ASC").
		Find(&licenses).Error
	return licenses, err
}

func (r *repository) Update(ctx context.Context, license *License) error {
	return r.db.WithContext(ctx).Save(license).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Table("employees").
			Where("license_id = ?", id).
			Update("license_id", nil).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.
			Where("company_id = ? AND id = ?", companyID, id).
			Delete(&License{}).Error
	})
}
