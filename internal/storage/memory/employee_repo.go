package memory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/employee"
)

// Unique violations carry the postgres wording so the shared error
// mappers treat both drivers the same.
var (
	errDuplicateEmail  = errors.New(`duplicate key value violates unique constraint "uq_employee_email"`)
	errDuplicateNumber = errors.New(`duplicate key value violates unique constraint "uq_employee_number"`)
)

type employeeRepo struct {
	s *Store
}

func (r *employeeRepo) Create(_ context.Context, e *employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.employees {
		if existing.Email != "" && existing.Email == e.Email {
			return errDuplicateEmail
		}
		if existing.EmployeeNumber != "" && existing.EmployeeNumber == e.EmployeeNumber {
			return errDuplicateNumber
		}
	}

	r.s.stamp(&e.CreatedAt, &e.UpdatedAt)
	r.s.employees[e.ID] = *e
	r.s.employeeOrder = append(r.s.employeeOrder, e.ID)
	return nil
}

func (r *employeeRepo) FindAllByCompany(_ context.Context, companyID string, includeArchived bool) ([]employee.Employee, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []employee.Employee
	for _, id := range r.s.employeeOrder {
		e, ok := r.s.employees[id]
		if !ok || e.CompanyID != cid {
			continue
		}
		if !includeArchived && e.Status == employee.StatusArchived {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *employeeRepo) FindByIDAndCompany(_ context.Context, companyID, id string) (*employee.Employee, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[eid]
	if !ok || e.CompanyID != cid {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *employeeRepo) Update(_ context.Context, e *employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	for id, existing := range r.s.employees {
		if id == e.ID {
			continue
		}
		if existing.Email != "" && existing.Email == e.Email {
			return errDuplicateEmail
		}
		if existing.EmployeeNumber != "" && existing.EmployeeNumber == e.EmployeeNumber {
			return errDuplicateNumber
		}
	}

	e.UpdatedAt = r.s.now().UTC()
	r.s.employees[e.ID] = *e
	return nil
}

func (r *employeeRepo) LicenseBelongsToCompany(_ context.Context, companyID, licenseID string) (bool, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return false, nil
	}
	lid, err := uuid.Parse(licenseID)
	if err != nil {
		return false, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.licenses[lid]
	return ok && l.CompanyID == cid, nil
}
