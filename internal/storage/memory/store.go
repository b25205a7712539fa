// Package memory backs every module repository with a single in-process
// store. It mirrors the relational backend's observable behavior, the
// gorm.ErrRecordNotFound sentinel included, so services run unchanged
// against either driver.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"go-hradmin/internal/company"
	"go-hradmin/internal/companyuser"
	"go-hradmin/internal/deduction"
	"go-hradmin/internal/document"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leave"
	"go-hradmin/internal/license"
	"go-hradmin/internal/notification"
	"go-hradmin/internal/shared/counter"
	"go-hradmin/internal/violation"
)

// Store holds every collection behind one lock. Insertion order is kept
// per collection so listings are stable without an ORDER BY.
type Store struct {
	mu sync.RWMutex

	companies    map[uuid.UUID]company.Company
	companyOrder []uuid.UUID

	employees     map[uuid.UUID]employee.Employee
	employeeOrder []uuid.UUID

	licenses     map[uuid.UUID]license.License
	licenseOrder []uuid.UUID

	leaves     map[uuid.UUID]leave.Leave
	leaveOrder []uuid.UUID

	deductions     map[uuid.UUID]deduction.Deduction
	deductionOrder []uuid.UUID

	violations     map[uuid.UUID]violation.Violation
	violationOrder []uuid.UUID

	documents     map[uuid.UUID]document.Document
	documentOrder []uuid.UUID

	notifications     map[uuid.UUID]notification.Notification
	notificationOrder []uuid.UUID

	memberships     map[uuid.UUID]companyuser.CompanyUser
	membershipOrder []uuid.UUID

	counters map[string]int64

	now func() time.Time
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		companies:     make(map[uuid.UUID]company.Company),
		employees:     make(map[uuid.UUID]employee.Employee),
		licenses:      make(map[uuid.UUID]license.License),
		leaves:        make(map[uuid.UUID]leave.Leave),
		deductions:    make(map[uuid.UUID]deduction.Deduction),
		violations:    make(map[uuid.UUID]violation.Violation),
		documents:     make(map[uuid.UUID]document.Document),
		notifications: make(map[uuid.UUID]notification.Notification),
		memberships:   make(map[uuid.UUID]companyuser.CompanyUser),
		counters:      make(map[string]int64),
		now:           now,
	}
}

// Adapters. Method name collisions across the module repository
// interfaces keep Store itself from implementing them directly.

func (s *Store) Companies() company.Repository       { return &companyRepo{s} }
func (s *Store) Employees() employee.Repository      { return &employeeRepo{s} }
func (s *Store) Licenses() license.Repository        { return &licenseRepo{s} }
func (s *Store) Leaves() leave.Repository            { return &leaveRepo{s} }
func (s *Store) Deductions() deduction.Repository    { return &deductionRepo{s} }
func (s *Store) Violations() violation.Repository    { return &violationRepo{s} }
func (s *Store) Documents() document.Repository      { return &documentRepo{s} }
func (s *Store) Notifications() notification.Repository {
	return &notificationRepo{s}
}
func (s *Store) Memberships() companyuser.Repository { return &membershipRepo{s} }
func (s *Store) Counters() counter.Repository        { return &counterRepo{s} }

func (s *Store) stamp(createdAt, updatedAt *time.Time) {
	now := s.now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

func removeID(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
