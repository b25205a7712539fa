package notification

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindAllByUser(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) ([]Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *gormRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) ([]Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}

	var notifications []Notification
	err := q.Order("created_at ASC").Find(&notifications).Error
	return notifications, err
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *gormRepository) Update(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Notification{}).Error
}

func (r *gormRepository) CountUnread(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) (int64, error) {
	q := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID)
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}
