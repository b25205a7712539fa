package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/company"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leave"
)

type companyRepo struct {
	s *Store
}

func (r *companyRepo) Create(_ context.Context, c *company.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&c.CreatedAt, &c.UpdatedAt)
	r.s.companies[c.ID] = *c
	r.s.companyOrder = append(r.s.companyOrder, c.ID)
	return nil
}

func (r *companyRepo) FindAll(_ context.Context) ([]company.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]company.Company, 0, len(r.s.companyOrder))
	for _, id := range r.s.companyOrder {
		out = append(out, r.s.companies[id])
	}
	return out, nil
}

func (r *companyRepo) FindByID(_ context.Context, id string) (*company.Company, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.companies[cid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *companyRepo) Update(_ context.Context, c *company.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.UpdatedAt = r.s.now().UTC()
	r.s.companies[c.ID] = *c
	return nil
}

func (r *companyRepo) Delete(_ context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[cid]; ok {
		delete(r.s.companies, cid)
		r.s.companyOrder = removeID(r.s.companyOrder, cid)
	}
	return nil
}

func (r *companyRepo) HasDependents(_ context.Context, companyID string) (bool, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return false, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if e.CompanyID == cid {
			return true, nil
		}
	}
	for _, l := range r.s.licenses {
		if l.CompanyID == cid {
			return true, nil
		}
	}
	return false, nil
}

func (r *companyRepo) CountEmployees(_ context.Context, companyID string) (int64, error) {
	return r.countEmployees(companyID, false)
}

func (r *companyRepo) CountActiveEmployees(_ context.Context, companyID string) (int64, error) {
	return r.countEmployees(companyID, true)
}

func (r *companyRepo) countEmployees(companyID string, activeOnly bool) (int64, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return 0, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, e := range r.s.employees {
		if e.CompanyID != cid {
			continue
		}
		if activeOnly && e.Status != employee.StatusActive {
			continue
		}
		count++
	}
	return count, nil
}

func (r *companyRepo) CountPendingLeaves(_ context.Context, companyID string) (int64, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return 0, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, l := range r.s.leaves {
		if l.CompanyID == cid && l.Status == leave.StatusPending {
			count++
		}
	}
	return count, nil
}

func (r *companyRepo) CountExpiringLicenses(_ context.Context, companyID string, cutoff time.Time) (int64, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return 0, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, l := range r.s.licenses {
		if l.CompanyID == cid && !l.ExpiryDate.After(cutoff) {
			count++
		}
	}
	return count, nil
}
