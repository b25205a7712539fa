package memory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/companyuser"
)

var errDuplicateMembership = errors.New(`duplicate key value violates unique constraint "uq_company_user"`)

type membershipRepo struct {
	s *Store
}

func (r *membershipRepo) Create(_ context.Context, m *companyuser.CompanyUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.memberships {
		if existing.UserID == m.UserID && existing.CompanyID == m.CompanyID {
			return errDuplicateMembership
		}
	}

	r.s.stamp(&m.CreatedAt, &m.UpdatedAt)
	r.s.memberships[m.ID] = *m
	r.s.membershipOrder = append(r.s.membershipOrder, m.ID)
	return nil
}

func (r *membershipRepo) FindAllByCompany(_ context.Context, companyID uuid.UUID) ([]companyuser.CompanyUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []companyuser.CompanyUser
	for _, id := range r.s.membershipOrder {
		m, ok := r.s.memberships[id]
		if ok && m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *membershipRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]companyuser.CompanyUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []companyuser.CompanyUser
	for _, id := range r.s.membershipOrder {
		m, ok := r.s.memberships[id]
		if ok && m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *membershipRepo) FindByIDAndCompany(_ context.Context, id, companyID uuid.UUID) (*companyuser.CompanyUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.memberships[id]
	if !ok || m.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *membershipRepo) FindByUserAndCompany(_ context.Context, userID, companyID uuid.UUID) (*companyuser.CompanyUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.memberships {
		if m.UserID == userID && m.CompanyID == companyID {
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *membershipRepo) Update(_ context.Context, m *companyuser.CompanyUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.memberships[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.UpdatedAt = r.s.now().UTC()
	r.s.memberships[m.ID] = *m
	return nil
}

func (r *membershipRepo) Delete(_ context.Context, id, companyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.memberships[id]
	if ok && m.CompanyID == companyID {
		delete(r.s.memberships, id)
		r.s.membershipOrder = removeID(r.s.membershipOrder, id)
	}
	return nil
}
