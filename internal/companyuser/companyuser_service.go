package companyuser

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	companyusererrors "go-hradmin/internal/companyuser/errors"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateMembershipRequest) (*MembershipResponse, error)
	GetAllByCompany(ctx context.Context, companyID string) ([]MembershipResponse, error)
	GetAllByUser(ctx context.Context, userID string) ([]MembershipResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*MembershipResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateMembershipRequest) (*MembershipResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("companyuser.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateMembershipRequest) (*MembershipResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyusererrors.ErrInvalidMembershipID
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, companyusererrors.ErrInvalidUserID
	}

	if existing, err := s.repo.FindByUserAndCompany(ctx, userID, cid); err == nil && existing != nil {
		return nil, companyusererrors.ErrDuplicateMembership
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m := &CompanyUser{
		ID:          uuid.New(),
		UserID:      userID,
		CompanyID:   cid,
		Role:        req.Role,
		Permissions: req.Permissions,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("membership created",
		zap.String("membership_id", m.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("company_id", cid.String()),
		zap.String("role", m.Role),
	)
	return mapToResponse(m), nil
}

func (s *service) GetAllByCompany(ctx context.Context, companyID string) ([]MembershipResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyusererrors.ErrInvalidMembershipID
	}

	members, err := s.repo.FindAllByCompany(ctx, cid)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(members), nil
}

func (s *service) GetAllByUser(ctx context.Context, userID string) ([]MembershipResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, companyusererrors.ErrInvalidUserID
	}

	members, err := s.repo.FindAllByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(members), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*MembershipResponse, error) {
	m, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(m), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateMembershipRequest) (*MembershipResponse, error) {
	m, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	m.Role = req.Role
	m.Permissions = req.Permissions

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToResponse(m), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return companyusererrors.ErrInvalidMembershipID
	}
	mid, err := uuid.Parse(id)
	if err != nil {
		return companyusererrors.ErrInvalidMembershipID
	}
	return s.repo.Delete(ctx, mid, cid)
}

func (s *service) find(ctx context.Context, companyID, id string) (*CompanyUser, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyusererrors.ErrInvalidMembershipID
	}
	mid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyusererrors.ErrInvalidMembershipID
	}

	m, err := s.repo.FindByIDAndCompany(ctx, mid, cid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return m, nil
}

func mapToListResponse(members []CompanyUser) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(members))
	for i := range members {
		out = append(out, *mapToResponse(&members[i]))
	}
	return out
}

func mapToResponse(m *CompanyUser) *MembershipResponse {
	permissions := m.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return &MembershipResponse{
		ID:          m.ID.String(),
		UserID:      m.UserID.String(),
		CompanyID:   m.CompanyID.String(),
		Role:        m.Role,
		Permissions: permissions,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
