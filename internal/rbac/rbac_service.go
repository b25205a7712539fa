package rbac

import (
	"context"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"

	"go-hradmin/internal/domain"
)

type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	memberships, err := s.repo.GetMemberships(context.Background(), companyID)
	if err != nil {
		return err
	}

	for _, m := range memberships {
		roleSub := "role:" + m.Role
		if _, err := s.enforcer.AddGroupingPolicy(m.UserID, roleSub, companyID); err != nil {
			return err
		}

		for _, g := range grantsForRole(m.Role) {
			if _, err := s.enforcer.AddPolicy(roleSub, companyID, g.Resource, g.Action); err != nil {
				return err
			}
		}

		// Per-user overrides are "resource:action" strings.
		for _, perm := range m.Permissions {
			resource, action, ok := strings.Cut(perm, ":")
			if !ok {
				s.logger.Warn("skipping malformed permission",
					zap.String("user_id", m.UserID),
					zap.String("permission", perm),
				)
				continue
			}
			if _, err := s.enforcer.AddPolicy(m.UserID, companyID, resource, action); err != nil {
				return err
			}
		}
	}

	s.logger.Debug("company policy loaded",
		zap.String("company_id", companyID),
		zap.Int("memberships", len(memberships)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(
		req.UserID,
		req.CompanyID,
		req.Resource,
		req.Action,
	)
	if err != nil {
		return false, err
	}

	s.logger.Debug("enforce",
		zap.String("user_id", req.UserID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
