package memory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/violation"
)

type violationRepo struct {
	s *Store
}

func (r *violationRepo) Create(_ context.Context, v *violation.Violation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&v.CreatedAt, &v.UpdatedAt)
	r.s.violations[v.ID] = *v
	r.s.violationOrder = append(r.s.violationOrder, v.ID)
	return nil
}

func (r *violationRepo) FindAllByEmployee(_ context.Context, companyID, employeeID uuid.UUID) ([]violation.Violation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []violation.Violation
	for _, id := range r.s.violationOrder {
		v, ok := r.s.violations[id]
		if ok && v.CompanyID == companyID && v.EmployeeID == employeeID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *violationRepo) FindByIDAndCompany(_ context.Context, id, companyID uuid.UUID) (*violation.Violation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.violations[id]
	if !ok || v.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *violationRepo) Update(_ context.Context, v *violation.Violation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.violations[v.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	v.UpdatedAt = r.s.now().UTC()
	r.s.violations[v.ID] = *v
	return nil
}

func (r *violationRepo) Delete(_ context.Context, id, companyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.violations[id]
	if ok && v.CompanyID == companyID {
		delete(r.s.violations, id)
		r.s.violationOrder = removeID(r.s.violationOrder, id)
	}
	return nil
}

func (r *violationRepo) EmployeeBelongsToCompany(_ context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[employeeID]
	return ok && e.CompanyID == companyID, nil
}
