package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/license"
)

type licenseRepo struct {
	s *Store
}

func (r *licenseRepo) Create(_ context.Context, l *license.License) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&l.CreatedAt, &l.UpdatedAt)
	r.s.licenses[l.ID] = *l
	r.s.licenseOrder = append(r.s.licenseOrder, l.ID)
	return nil
}

func (r *licenseRepo) FindAllByCompany(_ context.Context, companyID string) ([]license.License, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []license.License
	for _, id := range r.s.licenseOrder {
		l, ok := r.s.licenses[id]
		if ok && l.CompanyID == cid {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *licenseRepo) FindByIDAndCompany(_ context.Context, companyID, id string) (*license.License, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.licenses[lid]
	if !ok || l.CompanyID != cid {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r *licenseRepo) FindDetails(_ context.Context, companyID, id string) (*license.Details, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.licenses[lid]
	if !ok || l.CompanyID != cid {
		return nil, gorm.ErrRecordNotFound
	}

	details := &license.Details{License: l}
	if c, ok := r.s.companies[cid]; ok {
		details.CompanyName = c.Name
	}
	for _, e := range r.s.employees {
		if e.LicenseID != nil && *e.LicenseID == lid {
			details.EmployeeCount++
		}
	}
	return details, nil
}

func (r *licenseRepo) FindExpiring(_ context.Context, companyID string, cutoff time.Time) ([]license.License, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []license.License
	for _, id := range r.s.licenseOrder {
		l, ok := r.s.licenses[id]
		if ok && l.CompanyID == cid && !l.ExpiryDate.After(cutoff) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *licenseRepo) Update(_ context.Context, l *license.License) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.licenses[l.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	l.UpdatedAt = r.s.now().UTC()
	r.s.licenses[l.ID] = *l
	return nil
}

func (r *licenseRepo) Delete(_ context.Context, companyID, id string) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil
	}
	lid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.licenses[lid]
	if !ok || l.CompanyID != cid {
		return nil
	}

	delete(r.s.licenses, lid)
	r.s.licenseOrder = removeID(r.s.licenseOrder, lid)

	// Unassign the license from employees still pointing at it.
	for eid, e := range r.s.employees {
		if e.LicenseID != nil && *e.LicenseID == lid {
			e.LicenseID = nil
			e.UpdatedAt = r.s.now().UTC()
			r.s.employees[eid] = e
		}
	}
	return nil
}
