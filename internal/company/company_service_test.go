package company_test

import (
	"context"
	"testing"
	"time"

	"go-hradmin/internal/company"
	companyerrors "go-hradmin/internal/company/errors"
	"go-hradmin/internal/company/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestCompanyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, "Acme", c.Name)
			assert.Equal(t, company.StatusActive, c.Status)
			assert.NotEqual(t, uuid.Nil, c.ID)
			return nil
		})

	resp, err := svc.Create(context.Background(), company.CreateCompanyRequest{
		Name:     "Acme",
		Email:    "ops@acme.test",
		Industry: "logistics",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Equal(t, company.StatusActive, resp.Status)
}

func TestCompanyService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&company.Company{ID: id, Name: "Acme", Status: company.StatusActive}, nil)

		resp, err := svc.GetByID(context.Background(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("negative not found", func(t *testing.T) {
		id := uuid.New().String()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("negative malformed id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestCompanyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	t.Run("negative invalid status", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&company.Company{ID: id, Name: "Acme", Status: company.StatusActive}, nil)

		_, err := svc.Update(context.Background(), id.String(), company.UpdateCompanyRequest{
			Status: "dormant",
		})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidStatus)
	})

	t.Run("success partial update keeps unset fields", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&company.Company{ID: id, Name: "Acme", Industry: "logistics", Status: company.StatusActive}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *company.Company) error {
				assert.Equal(t, "Acme Corp", c.Name)
				assert.Equal(t, "logistics", c.Industry)
				return nil
			})

		resp, err := svc.Update(context.Background(), id.String(), company.UpdateCompanyRequest{
			Name: "Acme Corp",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Corp", resp.Name)
		assert.Equal(t, "logistics", resp.Industry)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	t.Run("refused while dependents exist", func(t *testing.T) {
		id := uuid.New().String()
		repo.EXPECT().HasDependents(gomock.Any(), id).Return(true, nil)

		err := svc.Delete(context.Background(), id)

		assert.ErrorIs(t, err, companyerrors.ErrCompanyHasDependents)
	})

	t.Run("success without dependents", func(t *testing.T) {
		id := uuid.New().String()
		repo.EXPECT().HasDependents(gomock.Any(), id).Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
	})
}

func TestCompanyService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := company.NewServiceWithClock(repo, func() time.Time { return now })

	id := uuid.New()
	repo.EXPECT().
		FindByID(gomock.Any(), id.String()).
		Return(&company.Company{ID: id, Name: "Acme", Status: company.StatusActive}, nil)
	repo.EXPECT().CountEmployees(gomock.Any(), id.String()).Return(int64(4), nil)
	repo.EXPECT().CountActiveEmployees(gomock.Any(), id.String()).Return(int64(3), nil)
	repo.EXPECT().CountPendingLeaves(gomock.Any(), id.String()).Return(int64(2), nil)
	repo.EXPECT().
		CountExpiringLicenses(gomock.Any(), id.String(), now.Add(30*24*time.Hour)).
		Return(int64(1), nil)

	stats, err := svc.GetStats(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalEmployees)
	assert.Equal(t, int64(3), stats.ActiveEmployees)
	assert.Equal(t, int64(2), stats.PendingLeaves)
	assert.Equal(t, int64(1), stats.ExpiringLicenses)
}
