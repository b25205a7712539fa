package leave_test

import (
	"context"
	"testing"
	"time"

	"go-hradmin/internal/leave"
	leaveerrors "go-hradmin/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn                 func(ctx context.Context, l *leave.Leave) error
	findAllByCompanyFn       func(ctx context.Context, companyID string) ([]leave.Leave, error)
	findAllByEmployeeFn      func(ctx context.Context, companyID, employeeID string) ([]leave.Leave, error)
	findByIDAndCompanyFn     func(ctx context.Context, companyID, id string) (*leave.Leave, error)
	updateFn                 func(ctx context.Context, l *leave.Leave) error
	deleteFn                 func(ctx context.Context, companyID, id string) error
	employeeBelongsToCompany func(ctx context.Context, companyID, employeeID string) (bool, error)
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAllByCompany(ctx context.Context, companyID string) ([]leave.Leave, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]leave.Leave, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*leave.Leave, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeLeaveRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.employeeBelongsToCompany != nil {
		return f.employeeBelongsToCompany(ctx, companyID, employeeID)
	}
	return true, nil
}

func pendingLeave(companyID, employeeID string) *leave.Leave {
	return &leave.Leave{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: uuid.MustParse(employeeID),
		LeaveType:  "annual",
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TotalDays:  3,
		Status:     leave.StatusPending,
		CreatedBy:  uuid.New(),
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		svc := leave.NewService(repo)

		req := leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  "annual",
			StartDate:  "2026-03-01",
			EndDate:    "2026-03-03",
			Reason:     "Family event",
		}

		repo.employeeBelongsToCompany = func(ctx context.Context, cid, eid string) (bool, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			return true, nil
		}
		repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, uuid.MustParse(companyID), l.CompanyID)
			assert.Equal(t, uuid.MustParse(employeeID), l.EmployeeID)
			assert.Equal(t, uuid.MustParse(actorID), l.CreatedBy)
			assert.Equal(t, 3, l.TotalDays)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := svc.Create(ctx, companyID, actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, companyID, resp.CompanyID)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.TotalDays)
	})

	t.Run("negative employee outside company", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			employeeBelongsToCompany: func(ctx context.Context, cid, eid string) (bool, error) {
				return false, nil
			},
		}
		svc := leave.NewService(repo)

		_, err := svc.Create(ctx, companyID, actorID, leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  "annual",
			StartDate:  "2026-03-01",
			EndDate:    "2026-03-02",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotInCompany)
	})

	t.Run("negative start after end", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		svc := leave.NewService(repo)

		_, err := svc.Create(ctx, companyID, actorID, leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  "annual",
			StartDate:  "2026-03-05",
			EndDate:    "2026-03-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success pending to approved", func(t *testing.T) {
		l := pendingLeave(companyID, employeeID)
		repo := &fakeLeaveRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*leave.Leave, error) {
				return l, nil
			},
		}
		var updated *leave.Leave
		repo.updateFn = func(ctx context.Context, l *leave.Leave) error {
			updated = l
			return nil
		}
		svc := leave.NewService(repo)

		resp, err := svc.Approve(ctx, companyID, actorID, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, actorID, *resp.ApprovedBy)
		assert.NotNil(t, resp.ApprovedAt)
		assert.Nil(t, resp.RejectionReason)
		assert.NotNil(t, updated.ApprovedAt)
	})

	t.Run("negative already approved", func(t *testing.T) {
		l := pendingLeave(companyID, employeeID)
		l.Status = leave.StatusApproved
		repo := &fakeLeaveRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*leave.Leave, error) {
				return l, nil
			},
		}
		svc := leave.NewService(repo)

		_, err := svc.Approve(ctx, companyID, actorID, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("negative not found", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		svc := leave.NewService(repo)

		_, err := svc.Approve(ctx, companyID, actorID, uuid.New().String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success with reason", func(t *testing.T) {
		l := pendingLeave(companyID, employeeID)
		repo := &fakeLeaveRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*leave.Leave, error) {
				return l, nil
			},
		}
		svc := leave.NewService(repo)

		resp, err := svc.Reject(ctx, companyID, actorID, l.ID.String(), "insufficient balance")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Nil(t, resp.ApprovedBy)
		assert.Nil(t, resp.ApprovedAt)
		assert.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "insufficient balance", *resp.RejectionReason)
	})

	t.Run("negative missing reason", func(t *testing.T) {
		l := pendingLeave(companyID, employeeID)
		repo := &fakeLeaveRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*leave.Leave, error) {
				return l, nil
			},
		}
		svc := leave.NewService(repo)

		_, err := svc.Reject(ctx, companyID, actorID, l.ID.String(), "")

		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("negative approve then reject", func(t *testing.T) {
		l := pendingLeave(companyID, employeeID)
		repo := &fakeLeaveRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*leave.Leave, error) {
				return l, nil
			},
		}
		svc := leave.NewService(repo)

		_, err := svc.Approve(ctx, companyID, actorID, l.ID.String())
		assert.NoError(t, err)

		_, err = svc.Reject(ctx, companyID, actorID, l.ID.String(), "changed my mind")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("missing id is a no-op", func(t *testing.T) {
		called := false
		repo := &fakeLeaveRepository{
			deleteFn: func(ctx context.Context, cid, id string) error {
				called = true
				return nil
			},
		}
		svc := leave.NewService(repo)

		err := svc.Delete(ctx, companyID, uuid.New().String())

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("negative malformed id", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		svc := leave.NewService(repo)

		err := svc.Delete(ctx, companyID, "not-a-uuid")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})
}
