package memory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/leave"
)

type leaveRepo struct {
	s *Store
}

func (r *leaveRepo) Create(_ context.Context, l *leave.Leave) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&l.CreatedAt, &l.UpdatedAt)
	r.s.leaves[l.ID] = *l
	r.s.leaveOrder = append(r.s.leaveOrder, l.ID)
	return nil
}

func (r *leaveRepo) FindAllByCompany(_ context.Context, companyID string) ([]leave.Leave, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []leave.Leave
	for _, id := range r.s.leaveOrder {
		l, ok := r.s.leaves[id]
		if ok && l.CompanyID == cid {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *leaveRepo) FindAllByEmployee(_ context.Context, companyID, employeeID string) ([]leave.Leave, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, nil
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []leave.Leave
	for _, id := range r.s.leaveOrder {
		l, ok := r.s.leaves[id]
		if ok && l.CompanyID == cid && l.EmployeeID == eid {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *leaveRepo) FindByIDAndCompany(_ context.Context, companyID, id string) (*leave.Leave, error) {
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

	l, ok := r.s.leaves[lid]
	if !ok || l.CompanyID != cid {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r *leaveRepo) Update(_ context.Context, l *leave.Leave) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.leaves[l.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	l.UpdatedAt = r.s.now().UTC()
	r.s.leaves[l.ID] = *l
	return nil
}

func (r *leaveRepo) Delete(_ context.Context, companyID, id string) error {
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

	l, ok := r.s.leaves[lid]
	if ok && l.CompanyID == cid {
		delete(r.s.leaves, lid)
		r.s.leaveOrder = removeID(r.s.leaveOrder, lid)
	}
	return nil
}

func (r *leaveRepo) EmployeeBelongsToCompany(_ context.Context, companyID, employeeID string) (bool, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return false, nil
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return false, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[eid]
	return ok && e.CompanyID == cid, nil
}
