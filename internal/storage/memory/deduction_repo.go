package memory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/deduction"
)

type deductionRepo struct {
	s *Store
}

func (r *deductionRepo) Create(_ context.Context, d *deduction.Deduction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&d.CreatedAt, &d.UpdatedAt)
	r.s.deductions[d.ID] = *d
	r.s.deductionOrder = append(r.s.deductionOrder, d.ID)
	return nil
}

func (r *deductionRepo) FindAllByEmployee(_ context.Context, companyID, employeeID uuid.UUID) ([]deduction.Deduction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []deduction.Deduction
	for _, id := range r.s.deductionOrder {
		d, ok := r.s.deductions[id]
		if ok && d.CompanyID == companyID && d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *deductionRepo) FindByIDAndCompany(_ context.Context, id, companyID uuid.UUID) (*deduction.Deduction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.deductions[id]
	if !ok || d.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *deductionRepo) Update(_ context.Context, d *deduction.Deduction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.deductions[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	d.UpdatedAt = r.s.now().UTC()
	r.s.deductions[d.ID] = *d
	return nil
}

func (r *deductionRepo) Delete(_ context.Context, id, companyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.deductions[id]
	if ok && d.CompanyID == companyID {
		delete(r.s.deductions, id)
		r.s.deductionOrder = removeID(r.s.deductionOrder, id)
	}
	return nil
}

func (r *deductionRepo) EmployeeBelongsToCompany(_ context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[employeeID]
	return ok && e.CompanyID == companyID, nil
}
