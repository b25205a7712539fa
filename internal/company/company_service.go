package company

import (
	"context"
	"errors"
	"time"

	companyerrors "go-hradmin/internal/company/errors"
	"go-hradmin/internal/license"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context, id string) (CompanyStatsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

// NewServiceWithClock lets callers pin "now" for the stats expiry cutoff.
func NewServiceWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	svc := NewService(repo, logger...).(*service)
	if now != nil {
		svc.now = now
	}
	return svc
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	comp := &Company{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Industry: req.Industry,
		Status:   StatusActive,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("create company success", zap.String("company_id", comp.ID.String()))
	return mapToResponse(*comp), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(companies), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	if req.Name != "" {
		comp.Name = req.Name
	}
	if req.Email != "" {
		comp.Email = req.Email
	}
	if req.Phone != "" {
		comp.Phone = req.Phone
	}
	if req.Industry != "" {
		comp.Industry = req.Industry
	}
	if req.Status != "" {
		switch req.Status {
		case StatusActive, StatusInactive, StatusSuspended:
			comp.Status = req.Status
		default:
			return CompanyResponse{}, companyerrors.ErrInvalidStatus
		}
	}
	comp.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company persist failed",
			zap.String("company_id", id),
			zap.Error(err),
		)
		return CompanyResponse{}, err
	}

	s.logger.Info("update company success", zap.String("company_id", id))
	return mapToResponse(*comp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return companyerrors.ErrInvalidCompanyID
	}

	hasDependents, err := s.repo.HasDependents(ctx, id)
	if err != nil {
		return err
	}
	if hasDependents {
		s.logger.Warn("delete company refused, dependents exist", zap.String("company_id", id))
		return companyerrors.ErrCompanyHasDependents
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) GetStats(ctx context.Context, id string) (CompanyStatsResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyStatsResponse{}, companyerrors.ErrInvalidCompanyID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyStatsResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyStatsResponse{}, err
	}

	total, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return CompanyStatsResponse{}, err
	}
	active, err := s.repo.CountActiveEmployees(ctx, id)
	if err != nil {
		return CompanyStatsResponse{}, err
	}
	pending, err := s.repo.CountPendingLeaves(ctx, id)
	if err != nil {
		return CompanyStatsResponse{}, err
	}
	cutoff := s.now().UTC().Add(license.ExpiringWindow)
	expiring, err := s.repo.CountExpiringLicenses(ctx, id, cutoff)
	if err != nil {
		return CompanyStatsResponse{}, err
	}

	return CompanyStatsResponse{
		TotalEmployees:   total,
		ActiveEmployees:  active,
		PendingLeaves:    pending,
		ExpiringLicenses: expiring,
	}, nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Industry:  c.Industry,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res
}
