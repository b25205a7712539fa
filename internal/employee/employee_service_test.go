package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hradmin/internal/employee"
	employeeerrors "go-hradmin/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn                func(ctx context.Context, e *employee.Employee) error
	findAllByCompanyFn      func(ctx context.Context, companyID string, includeArchived bool) ([]employee.Employee, error)
	findByIDAndCompanyFn    func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn                func(ctx context.Context, e *employee.Employee) error
	licenseBelongsToCompany bool
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string, includeArchived bool) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, includeArchived)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) LicenseBelongsToCompany(ctx context.Context, companyID, licenseID string) (bool, error) {
	return f.licenseBelongsToCompany, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func activeEmployee(companyID string) *employee.Employee {
	return &employee.Employee{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		FullName:  "Ali Rahman",
		Email:     "ali@acme.test",
		Position:  "driver",
		Status:    employee.StatusActive,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("success generates sequential employee number", func(t *testing.T) {
		var created []*employee.Employee
		repo := &fakeEmployeeRepository{
			createFn: func(_ context.Context, e *employee.Employee) error {
				created = append(created, e)
				return nil
			},
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		first, err := svc.Create(context.Background(), companyID, employee.CreateEmployeeRequest{
			FullName: "Ali Rahman",
			Email:    "ali@acme.test",
		})
		assert.NoError(t, err)
		assert.Equal(t, "EMP-0001", first.EmployeeNumber)

		second, err := svc.Create(context.Background(), companyID, employee.CreateEmployeeRequest{
			FullName: "Budi Santoso",
			Email:    "budi@acme.test",
		})
		assert.NoError(t, err)
		assert.Equal(t, "EMP-0002", second.EmployeeNumber)

		assert.Len(t, created, 2)
		assert.Equal(t, employee.StatusActive, created[0].Status)
	})

	t.Run("explicit employee number skips the counter", func(t *testing.T) {
		repo := &fakeEmployeeRepository{}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		resp, err := svc.Create(context.Background(), companyID, employee.CreateEmployeeRequest{
			FullName:       "Citra Dewi",
			Email:          "citra@acme.test",
			EmployeeNumber: "EXT-7",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EXT-7", resp.EmployeeNumber)
	})

	t.Run("negative duplicate email maps to conflict", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			createFn: func(_ context.Context, _ *employee.Employee) error {
				return errors.New(`duplicate key value violates unique constraint "uq_employee_email"`)
			},
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		_, err := svc.Create(context.Background(), companyID, employee.CreateEmployeeRequest{
			FullName: "Ali Rahman",
			Email:    "ali@acme.test",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("negative malformed company id", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, &fakeCounterRepository{}, nil)

		_, err := svc.Create(context.Background(), "not-a-uuid", employee.CreateEmployeeRequest{
			FullName: "Ali Rahman",
			Email:    "ali@acme.test",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCompanyID)
	})
}

func TestEmployeeService_Archive(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("success stamps archive fields", func(t *testing.T) {
		existing := activeEmployee(companyID)
		var updated *employee.Employee
		repo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(_ context.Context, _, _ string) (*employee.Employee, error) {
				return existing, nil
			},
			updateFn: func(_ context.Context, e *employee.Employee) error {
				updated = e
				return nil
			},
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		resp, err := svc.Archive(context.Background(), companyID, existing.ID.String(), "contract ended")

		assert.NoError(t, err)
		assert.Equal(t, employee.StatusArchived, resp.Status)
		assert.NotNil(t, updated)
		assert.NotNil(t, updated.ArchivedAt)
		assert.Equal(t, "contract ended", *updated.ArchiveReason)
	})

	t.Run("negative archiving twice is rejected", func(t *testing.T) {
		archivedAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
		existing := activeEmployee(companyID)
		existing.Status = employee.StatusArchived
		existing.ArchivedAt = &archivedAt
		repo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(_ context.Context, _, _ string) (*employee.Employee, error) {
				return existing, nil
			},
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		_, err := svc.Archive(context.Background(), companyID, existing.ID.String(), "again")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyArchived)
		assert.Equal(t, archivedAt, *existing.ArchivedAt)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, &fakeCounterRepository{}, nil)

		_, err := svc.Archive(context.Background(), companyID, uuid.New().String(), "gone")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_AssignLicense(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		existing := activeEmployee(companyID)
		licenseID := uuid.New()
		repo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(_ context.Context, _, _ string) (*employee.Employee, error) {
				return existing, nil
			},
			licenseBelongsToCompany: true,
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		resp, err := svc.AssignLicense(context.Background(), companyID, existing.ID.String(), licenseID.String())

		assert.NoError(t, err)
		assert.NotNil(t, resp.LicenseID)
		assert.Equal(t, licenseID.String(), *resp.LicenseID)
	})

	t.Run("empty license id clears the assignment", func(t *testing.T) {
		existing := activeEmployee(companyID)
		lid := uuid.New()
		existing.LicenseID = &lid
		repo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(_ context.Context, _, _ string) (*employee.Employee, error) {
				return existing, nil
			},
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		resp, err := svc.AssignLicense(context.Background(), companyID, existing.ID.String(), "")

		assert.NoError(t, err)
		assert.Nil(t, resp.LicenseID)
	})

	t.Run("negative license from another company", func(t *testing.T) {
		existing := activeEmployee(companyID)
		repo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(_ context.Context, _, _ string) (*employee.Employee, error) {
				return existing, nil
			},
			licenseBelongsToCompany: false,
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		_, err := svc.AssignLicense(context.Background(), companyID, existing.ID.String(), uuid.New().String())

		assert.ErrorIs(t, err, employeeerrors.ErrLicenseNotInCompany)
	})

	t.Run("negative malformed license id", func(t *testing.T) {
		existing := activeEmployee(companyID)
		repo := &fakeEmployeeRepository{
			findByIDAndCompanyFn: func(_ context.Context, _, _ string) (*employee.Employee, error) {
				return existing, nil
			},
		}
		svc := employee.NewService(repo, &fakeCounterRepository{}, nil)

		_, err := svc.AssignLicense(context.Background(), companyID, existing.ID.String(), "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidLicenseID)
	})
}
