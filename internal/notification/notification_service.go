package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	notificationerrors "go-hradmin/internal/notification/errors"
)

const unreadCountTTL = 30 * time.Second

func UnreadCountKey(userID string, companyID *uuid.UUID) string {
	if companyID != nil {
		return fmt.Sprintf("notifications:unread:%s:%s", userID, companyID.String())
	}
	return fmt.Sprintf("notifications:unread:%s", userID)
}

type Service interface {
	Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error)
	GetAllByUser(ctx context.Context, userID, companyID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id string) (*NotificationResponse, error)
	UnreadCount(ctx context.Context, userID, companyID string) (int64, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, rdb, time.Now, logger...)
}

func NewServiceWithClock(repo Repository, rdb *redis.Client, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, rdb: rdb, logger: l, now: now}
}

func (s *service) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidUserID
	}

	var companyID *uuid.UUID
	if req.CompanyID != "" {
		cid, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return nil, notificationerrors.ErrInvalidCompanyID
		}
		companyID = &cid
	}

	n := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
		Title:     req.Title,
		Message:   req.Message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.invalidateUnreadCache(ctx, n)
	s.logger.Info("notification created",
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return mapToResponse(n), nil
}

func (s *service) GetAllByUser(ctx context.Context, userID, companyID string) ([]NotificationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidUserID
	}

	cid, err := parseOptionalCompanyID(companyID)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repo.FindAllByUser(ctx, uid, cid)
	if err != nil {
		return nil, err
	}

	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, *mapToResponse(&notifications[i]))
	}
	return out, nil
}

// MarkRead stamps the read time once; marking an already read
// notification keeps the original timestamp.
func (s *service) MarkRead(ctx context.Context, userID, id string) (*NotificationResponse, error) {
	n, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if n.ReadAt == nil {
		readAt := s.now().UTC()
		n.ReadAt = &readAt
		if err := s.repo.Update(ctx, n); err != nil {
			return nil, err
		}
		s.invalidateUnreadCache(ctx, n)
	}

	return mapToResponse(n), nil
}

// UnreadCount serves from a short-lived redis counter when possible
// to keep navbar badge polling off the database.
func (s *service) UnreadCount(ctx context.Context, userID, companyID string) (int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, notificationerrors.ErrInvalidUserID
	}

	cid, err := parseOptionalCompanyID(companyID)
	if err != nil {
		return 0, err
	}

	key := UnreadCountKey(userID, cid)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.repo.CountUnread(ctx, uid, cid)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		_ = s.rdb.Set(ctx, key, strconv.FormatInt(count, 10), unreadCountTTL).Err()
	}
	return count, nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	n, err := s.findOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, notificationerrors.ErrNotificationNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(ctx, n.ID); err != nil {
		return err
	}
	s.invalidateUnreadCache(ctx, n)
	return nil
}

func (s *service) findOwned(ctx context.Context, userID, id string) (*Notification, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidUserID
	}
	nid, err := uuid.Parse(id)
	if err != nil {
		return nil, notificationerrors.ErrInvalidNotificationID
	}

	n, err := s.repo.FindByID(ctx, nid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notificationerrors.ErrNotificationNotFound
		}
		return nil, err
	}
	if n.UserID != uid {
		return nil, notificationerrors.ErrNotificationNotFound
	}
	return n, nil
}

func (s *service) invalidateUnreadCache(ctx context.Context, n *Notification) {
	if s.rdb == nil {
		return
	}

	keys := []string{UnreadCountKey(n.UserID.String(), nil)}
	if n.CompanyID != nil {
		keys = append(keys, UnreadCountKey(n.UserID.String(), n.CompanyID))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warn("invalidate unread count cache failed",
			zap.String("user_id", n.UserID.String()),
			zap.Error(err),
		)
	}
}

func parseOptionalCompanyID(companyID string) (*uuid.UUID, error) {
	if companyID == "" {
		return nil, nil
	}
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidCompanyID
	}
	return &cid, nil
}

func mapToResponse(n *Notification) *NotificationResponse {
	resp := &NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.CompanyID != nil {
		resp.CompanyID = n.CompanyID.String()
	}
	if n.ReadAt != nil {
		resp.ReadAt = n.ReadAt.Format(time.RFC3339)
	}
	return resp
}
