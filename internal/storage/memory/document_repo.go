package memory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/document"
)

type documentRepo struct {
	s *Store
}

func (r *documentRepo) Create(_ context.Context, d *document.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&d.CreatedAt, &d.UpdatedAt)
	r.s.documents[d.ID] = *d
	r.s.documentOrder = append(r.s.documentOrder, d.ID)
	return nil
}

func (r *documentRepo) FindAllByEntity(_ context.Context, companyID uuid.UUID, entityType document.EntityType, entityID uuid.UUID) ([]document.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []document.Document
	for _, id := range r.s.documentOrder {
		d, ok := r.s.documents[id]
		if ok && d.CompanyID == companyID && d.EntityType == entityType && d.EntityID == entityID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *documentRepo) FindByIDAndCompany(_ context.Context, id, companyID uuid.UUID) (*document.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.documents[id]
	if !ok || d.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *documentRepo) Delete(_ context.Context, id, companyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.documents[id]
	if ok && d.CompanyID == companyID {
		delete(r.s.documents, id)
		r.s.documentOrder = removeID(r.s.documentOrder, id)
	}
	return nil
}
