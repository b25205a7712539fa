package license

import (
	"context"
	"errors"
	"time"

	licenseerrors "go-hradmin/internal/license/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=license_service.go -destination=mock/license_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateLicenseRequest) (LicenseResponse, error)
	GetAll(ctx context.Context, companyID string) ([]LicenseResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LicenseDetailsResponse, error)
	GetExpiring(ctx context.Context, companyID string) ([]LicenseResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateLicenseRequest) (LicenseResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("license.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("license.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

// NewServiceWithClock pins "now" for the expiring cutoff.
func NewServiceWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	svc := NewService(repo, logger...).(*service)
	if now != nil {
		svc.now = now
	}
	return svc
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLicenseRequest) (LicenseResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LicenseResponse{}, licenseerrors.ErrInvalidCompanyID
	}

	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return LicenseResponse{}, err
	}

	l := &License{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		ExpiryDate:    expiry,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create license persist failed", zap.Error(err))
		return LicenseResponse{}, err
	}

	s.logger.Info("create license success",
		zap.String("license_id", l.ID.String()),
		zap.String("company_id", companyID),
	)
	return s.mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]LicenseResponse, error) {
	licenses, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(licenses), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LicenseDetailsResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LicenseDetailsResponse{}, licenseerrors.ErrInvalidLicenseID
	}

	details, err := s.repo.FindDetails(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LicenseDetailsResponse{}, licenseerrors.ErrLicenseNotFound
		}
		return LicenseDetailsResponse{}, err
	}

	return LicenseDetailsResponse{
		LicenseResponse: s.mapToResponse(details.License),
		CompanyName:     details.CompanyName,
		EmployeeCount:   details.EmployeeCount,
	}, nil
}

func (s *service) GetExpiring(ctx context.Context, companyID string) ([]LicenseResponse, error) {
	cutoff := s.now().UTC().Add(ExpiringWindow)
	licenses, err := s.repo.FindExpiring(ctx, companyID, cutoff)
	if err != nil {
		return nil, err
	}
	return s.mapToListResponse(licenses), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateLicenseRequest) (LicenseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LicenseResponse{}, licenseerrors.ErrInvalidLicenseID
	}

	l, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LicenseResponse{}, licenseerrors.ErrLicenseNotFound
		}
		return LicenseResponse{}, err
	}

	if req.Name != "" {
		l.Name = req.Name
	}
	if req.LicenseNumber != "" {
		l.LicenseNumber = req.LicenseNumber
	}
	if req.ExpiryDate != "" {
		expiry, err := parseDate(req.ExpiryDate)
		if err != nil {
			return LicenseResponse{}, err
		}
		l.ExpiryDate = expiry
	}
	l.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("update license persist failed",
			zap.String("license_id", id),
			zap.Error(err),
		)
		return LicenseResponse{}, err
	}

	return s.mapToResponse(*l), nil
}

// Delete is idempotent: a missing id is not an error.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return licenseerrors.ErrInvalidLicenseID
	}
	return s.repo.Delete(ctx, companyID, id)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, licenseerrors.ErrInvalidExpiryDate
	}
	return t, nil
}

func (s *service) mapToResponse(l License) LicenseResponse {
	cutoff := s.now().UTC().Add(ExpiringWindow)
	return LicenseResponse{
		ID:            l.ID.String(),
		CompanyID:     l.CompanyID.String(),
		Name:          l.Name,
		LicenseNumber: l.LicenseNumber,
		ExpiryDate:    l.ExpiryDate.Format("2006-01-02"),
		Expiring:      !l.ExpiryDate.After(cutoff),
	}
}

func (s *service) mapToListResponse(licenses []License) []LicenseResponse {
	res := make([]LicenseResponse, len(licenses))
	for i, l := range licenses {
		res[i] = s.mapToResponse(l)
	}
	return res
}
