package notification_test

import (
	"context"
	"testing"
	"time"

	"go-hradmin/internal/notification"
	notificationerrors "go-hradmin/internal/notification/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	createFn      func(ctx context.Context, n *notification.Notification) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	updateFn      func(ctx context.Context, n *notification.Notification) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	countUnreadFn func(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) (int64, error)
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID, companyID *uuid.UUID) (int64, error) {
	if f.countUnreadFn != nil {
		return f.countUnreadFn(ctx, userID, companyID)
	}
	return 0, nil
}

func TestNotificationService_UnreadCount(t *testing.T) {
	userID := uuid.New()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeNotificationRepository{
			countUnreadFn: func(_ context.Context, _ uuid.UUID, _ *uuid.UUID) (int64, error) {
				t.Fatal("repository should not be queried on a cache hit")
				return 0, nil
			},
		}
		svc := notification.NewService(repo, rdb)

		mock.ExpectGet(notification.UnreadCountKey(userID.String(), nil)).SetVal("7")

		count, err := svc.UnreadCount(context.Background(), userID.String(), "")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss counts and repopulates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		companyID := uuid.New()
		repo := &fakeNotificationRepository{
			countUnreadFn: func(_ context.Context, uid uuid.UUID, cid *uuid.UUID) (int64, error) {
				assert.Equal(t, userID, uid)
				assert.NotNil(t, cid)
				return 3, nil
			},
		}
		svc := notification.NewService(repo, rdb)

		key := notification.UnreadCountKey(userID.String(), &companyID)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, "3", 30*time.Second).SetVal("OK")

		count, err := svc.UnreadCount(context.Background(), userID.String(), companyID.String())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative malformed user id", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{}, nil)

		_, err := svc.UnreadCount(context.Background(), "nope", "")

		assert.ErrorIs(t, err, notificationerrors.ErrInvalidUserID)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	userID := uuid.New()

	t.Run("success stamps read time and drops cached counts", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		companyID := uuid.New()
		existing := &notification.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			CompanyID: &companyID,
			Title:     "Leave request approved",
		}
		var updated *notification.Notification
		repo := &fakeNotificationRepository{
			findByIDFn: func(_ context.Context, _ uuid.UUID) (*notification.Notification, error) {
				return existing, nil
			},
			updateFn: func(_ context.Context, n *notification.Notification) error {
				updated = n
				return nil
			},
		}
		now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		svc := notification.NewServiceWithClock(repo, rdb, func() time.Time { return now })

		mock.ExpectDel(
			notification.UnreadCountKey(userID.String(), nil),
			notification.UnreadCountKey(userID.String(), &companyID),
		).SetVal(2)

		resp, err := svc.MarkRead(context.Background(), userID.String(), existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, now.Format(time.RFC3339), resp.ReadAt)
		assert.NotNil(t, updated)
		assert.Equal(t, now, *updated.ReadAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("marking twice keeps the first timestamp", func(t *testing.T) {
		firstRead := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		existing := &notification.Notification{
			ID:     uuid.New(),
			UserID: userID,
			ReadAt: &firstRead,
		}
		repo := &fakeNotificationRepository{
			findByIDFn: func(_ context.Context, _ uuid.UUID) (*notification.Notification, error) {
				return existing, nil
			},
			updateFn: func(_ context.Context, _ *notification.Notification) error {
				t.Fatal("already read notifications must not be rewritten")
				return nil
			},
		}
		svc := notification.NewService(repo, nil)

		resp, err := svc.MarkRead(context.Background(), userID.String(), existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, firstRead.Format(time.RFC3339), resp.ReadAt)
	})

	t.Run("negative someone else's notification stays hidden", func(t *testing.T) {
		existing := &notification.Notification{ID: uuid.New(), UserID: uuid.New()}
		repo := &fakeNotificationRepository{
			findByIDFn: func(_ context.Context, _ uuid.UUID) (*notification.Notification, error) {
				return existing, nil
			},
		}
		svc := notification.NewService(repo, nil)

		_, err := svc.MarkRead(context.Background(), userID.String(), existing.ID.String())

		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		existing := &notification.Notification{ID: uuid.New(), UserID: userID}
		deleted := false
		repo := &fakeNotificationRepository{
			findByIDFn: func(_ context.Context, _ uuid.UUID) (*notification.Notification, error) {
				return existing, nil
			},
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				deleted = true
				assert.Equal(t, existing.ID, id)
				return nil
			},
		}
		svc := notification.NewService(repo, nil)

		assert.NoError(t, svc.Delete(context.Background(), userID.String(), existing.ID.String()))
		assert.True(t, deleted)
	})

	t.Run("deleting a missing notification is a no-op", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{}, nil)

		assert.NoError(t, svc.Delete(context.Background(), userID.String(), uuid.New().String()))
	})
}
