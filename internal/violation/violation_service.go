package violation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	violationerrors "go-hradmin/internal/violation/errors"
)

type Service interface {
	Create(ctx context.Context, companyID, employeeID string, req CreateViolationRequest) (*ViolationResponse, error)
	GetAllByEmployee(ctx context.Context, companyID, employeeID string) ([]ViolationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*ViolationResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateViolationRequest) (*ViolationResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("violation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, employeeID string, req CreateViolationRequest) (*ViolationResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, violationerrors.ErrInvalidViolationID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, violationerrors.ErrEmployeeNotInCompany
	}

	occurredAt, err := parseDate(req.OccurredAt)
	if err != nil {
		return nil, violationerrors.ErrInvalidOccurredAt
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, eid, cid)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, violationerrors.ErrEmployeeNotInCompany
	}

	v := &Violation{
		ID:          uuid.New(),
		CompanyID:   cid,
		EmployeeID:  eid,
		Category:    req.Category,
		Severity:    req.Severity,
		OccurredAt:  occurredAt,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("violation recorded",
		zap.String("violation_id", v.ID.String()),
		zap.String("employee_id", eid.String()),
		zap.String("severity", v.Severity),
	)
	return mapToResponse(v), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, companyID, employeeID string) ([]ViolationResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, violationerrors.ErrInvalidViolationID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, violationerrors.ErrEmployeeNotInCompany
	}

	violations, err := s.repo.FindAllByEmployee(ctx, cid, eid)
	if err != nil {
		return nil, err
	}

	out := make([]ViolationResponse, 0, len(violations))
	for i := range violations {
		out = append(out, *mapToResponse(&violations[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*ViolationResponse, error) {
	v, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(v), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateViolationRequest) (*ViolationResponse, error) {
	v, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	occurredAt, err := parseDate(req.OccurredAt)
	if err != nil {
		return nil, violationerrors.ErrInvalidOccurredAt
	}

	v.Category = req.Category
	v.Severity = req.Severity
	v.OccurredAt = occurredAt
	v.Description = req.Description

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return mapToResponse(v), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return violationerrors.ErrInvalidViolationID
	}
	vid, err := uuid.Parse(id)
	if err != nil {
		return violationerrors.ErrInvalidViolationID
	}
	return s.repo.Delete(ctx, vid, cid)
}

func (s *service) find(ctx context.Context, companyID, id string) (*Violation, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, violationerrors.ErrInvalidViolationID
	}
	vid, err := uuid.Parse(id)
	if err != nil {
		return nil, violationerrors.ErrInvalidViolationID
	}

	v, err := s.repo.FindByIDAndCompany(ctx, vid, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, violationerrors.ErrViolationNotFound
		}
		return nil, err
	}
	return v, nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func mapToResponse(v *Violation) *ViolationResponse {
	return &ViolationResponse{
		ID:          v.ID.String(),
		EmployeeID:  v.EmployeeID.String(),
		Category:    v.Category,
		Severity:    v.Severity,
		OccurredAt:  v.OccurredAt.Format("2006-01-02"),
		Description: v.Description,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}
