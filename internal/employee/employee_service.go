package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-hradmin/internal/employee/errors"
	"go-hradmin/internal/events"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/shared/contextutil"
	"go-hradmin/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string, includeArchived bool) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Archive(ctx context.Context, companyID, id, reason string) (EmployeeResponse, error)
	AssignLicense(ctx context.Context, companyID, id, licenseID string) (EmployeeResponse, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, counterRepo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	number := req.EmployeeNumber
	if number == "" && s.counter != nil {
		nextVal, err := s.counter.GetNextValue(ctx, companyID, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		number = fmt.Sprintf("EMP-%04d", nextVal)
	}

	e := &Employee{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		FullName:       req.FullName,
		Email:          req.Email,
		EmployeeNumber: number,
		Position:       req.Position,
		Status:         StatusActive,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.enqueueCreatedEvent(ctx, e)
	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.String("company_id", companyID),
	)

	return mapToResponse(*e), nil
}

// enqueueCreatedEvent writes the lifecycle event into the outbox; the relay
// worker carries it to kafka. Failures are logged only, the employee row is
// already committed.
func (s *service) enqueueCreatedEvent(ctx context.Context, e *Employee) {
	if s.outbox == nil {
		return
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		FullName:   e.FullName,
		OccurredAt: s.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("encode employee created event failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   e.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("enqueue employee created event failed",
			zap.String("employee_id", e.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) GetAll(ctx context.Context, companyID string, includeArchived bool) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByCompany(ctx, companyID, includeArchived)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(employees), nil
}

// GetOptions serves the id/name dropdown list from redis when possible;
// singleflight keeps concurrent cache misses from stampeding the database.
func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOptionResponse, error) {
	key := GetEmployeeOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var options []EmployeeOptionResponse
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		employees, err := s.repo.FindAllByCompany(ctx, companyID, false)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			options[i] = EmployeeOptionResponse{ID: e.ID.String(), FullName: e.FullName}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				_ = s.rdb.Set(ctx, key, payload, 5*time.Minute).Err()
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FullName != "" {
		e.FullName = req.FullName
	}
	if req.Email != "" {
		e.Email = req.Email
	}
	if req.Position != "" {
		e.Position = req.Position
	}
	e.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, companyID)
	return mapToResponse(*e), nil
}

// Archive is the only sanctioned removal from active views; the row stays.
// Archiving an archived employee is rejected and the first ArchivedAt wins.
func (s *service) Archive(ctx context.Context, companyID, id, reason string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if e.Status == StatusArchived {
		s.logger.Warn("archive employee rejected, already archived",
			zap.String("employee_id", id),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyArchived
	}

	now := s.now().UTC()
	e.Status = StatusArchived
	e.ArchivedAt = &now
	e.ArchiveReason = &reason
	e.UpdatedAt = now

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("archive employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, companyID)

	s.logger.Info("archive employee success",
		zap.String("employee_id", id),
		zap.String("company_id", companyID),
	)
	return mapToResponse(*e), nil
}

func (s *service) AssignLicense(ctx context.Context, companyID, id, licenseID string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if licenseID == "" {
		e.LicenseID = nil
	} else {
		licenseUUID, err := uuid.Parse(licenseID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidLicenseID
		}

		belongs, err := s.repo.LicenseBelongsToCompany(ctx, companyID, licenseID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !belongs {
			return EmployeeResponse{}, employeeerrors.ErrLicenseNotInCompany
		}

		e.LicenseID = &licenseUUID
	}
	e.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, GetEmployeeOptionsKey(companyID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warn("invalidate employee options cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		CompanyID:      e.CompanyID.String(),
		FullName:       e.FullName,
		Email:          e.Email,
		EmployeeNumber: e.EmployeeNumber,
		Position:       e.Position,
		Status:         e.Status,
		ArchiveReason:  e.ArchiveReason,
	}
	if e.LicenseID != nil {
		v := e.LicenseID.String()
		resp.LicenseID = &v
	}
	if e.ArchivedAt != nil {
		v := e.ArchivedAt.Format(time.RFC3339)
		resp.ArchivedAt = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
