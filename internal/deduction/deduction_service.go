package deduction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	deductionerrors "go-hradmin/internal/deduction/errors"
)

type Service interface {
	Create(ctx context.Context, companyID, employeeID string, req CreateDeductionRequest) (*DeductionResponse, error)
	GetAllByEmployee(ctx context.Context, companyID, employeeID string) ([]DeductionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*DeductionResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateDeductionRequest) (*DeductionResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, employeeID string, req CreateDeductionRequest) (*DeductionResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDeductionID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, deductionerrors.ErrEmployeeNotInCompany
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDate
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, eid, cid)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, deductionerrors.ErrEmployeeNotInCompany
	}

	d := &Deduction{
		ID:          uuid.New(),
		CompanyID:   cid,
		EmployeeID:  eid,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("deduction created",
		zap.String("deduction_id", d.ID.String()),
		zap.String("employee_id", eid.String()),
	)
	return mapToResponse(d), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, companyID, employeeID string) ([]DeductionResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDeductionID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, deductionerrors.ErrEmployeeNotInCompany
	}

	deductions, err := s.repo.FindAllByEmployee(ctx, cid, eid)
	if err != nil {
		return nil, err
	}

	out := make([]DeductionResponse, 0, len(deductions))
	for i := range deductions {
		out = append(out, *mapToResponse(&deductions[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*DeductionResponse, error) {
	d, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(d), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateDeductionRequest) (*DeductionResponse, error) {
	d, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDate
	}

	d.Amount = req.Amount
	d.Date = date
	d.Description = req.Description

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return mapToResponse(d), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return deductionerrors.ErrInvalidDeductionID
	}
	did, err := uuid.Parse(id)
	if err != nil {
		return deductionerrors.ErrInvalidDeductionID
	}
	return s.repo.Delete(ctx, did, cid)
}

func (s *service) find(ctx context.Context, companyID, id string) (*Deduction, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDeductionID
	}
	did, err := uuid.Parse(id)
	if err != nil {
		return nil, deductionerrors.ErrInvalidDeductionID
	}

	d, err := s.repo.FindByIDAndCompany(ctx, did, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deductionerrors.ErrDeductionNotFound
		}
		return nil, err
	}
	return d, nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func mapToResponse(d *Deduction) *DeductionResponse {
	return &DeductionResponse{
		ID:          d.ID.String(),
		EmployeeID:  d.EmployeeID.String(),
		Amount:      d.Amount,
		Date:        d.Date.Format("2006-01-02"),
		Description: d.Description,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
