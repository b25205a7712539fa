package memory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/notification"
)

type notificationRepo struct {
	s *Store
}

func (r *notificationRepo) Create(_ context.Context, n *notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&n.CreatedAt, &n.UpdatedAt)
	r.s.notifications[n.ID] = *n
	r.s.notificationOrder = append(r.s.notificationOrder, n.ID)
	return nil
}

func (r *notificationRepo) FindAllByUser(_ context.Context, userID uuid.UUID, companyID *uuid.UUID) ([]notification.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []notification.Notification
	for _, id := range r.s.notificationOrder {
		n, ok := r.s.notifications[id]
		if !ok || n.UserID != userID {
			continue
		}
		if companyID != nil && (n.CompanyID == nil || *n.CompanyID != *companyID) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *notificationRepo) FindByID(_ context.Context, id uuid.UUID) (*notification.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &n, nil
}

func (r *notificationRepo) Update(_ context.Context, n *notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notifications[n.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	n.UpdatedAt = r.s.now().UTC()
	r.s.notifications[n.ID] = *n
	return nil
}

func (r *notificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notifications[id]; ok {
		delete(r.s.notifications, id)
		r.s.notificationOrder = removeID(r.s.notificationOrder, id)
	}
	return nil
}

func (r *notificationRepo) CountUnread(_ context.Context, userID uuid.UUID, companyID *uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, n := range r.s.notifications {
		if n.UserID != userID || n.ReadAt != nil {
			continue
		}
		if companyID != nil && (n.CompanyID == nil || *n.CompanyID != *companyID) {
			continue
		}
		count++
	}
	return count, nil
}
