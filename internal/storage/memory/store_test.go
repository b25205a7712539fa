package memory_test

import (
	"context"
	"testing"
	"time"

	"go-hradmin/internal/company"
	"go-hradmin/internal/companyuser"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leave"
	"go-hradmin/internal/license"
	"go-hradmin/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newStore() *memory.Store {
	return memory.NewStoreWithClock(func() time.Time { return fixedNow })
}

func seedCompany(t *testing.T, s *memory.Store, name string) company.Company {
	t.Helper()
	c := company.Company{ID: uuid.New(), Name: name, Status: company.StatusActive}
	assert.NoError(t, s.Companies().Create(context.Background(), &c))
	return c
}

func seedEmployee(t *testing.T, s *memory.Store, companyID uuid.UUID, name, email string) employee.Employee {
	t.Helper()
	e := employee.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		FullName:  name,
		Email:     email,
		Status:    employee.StatusActive,
	}
	assert.NoError(t, s.Employees().Create(context.Background(), &e))
	return e
}

func TestStore_CompanyStatsMatchListings(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	acme := seedCompany(t, s, "Acme Logistics")
	other := seedCompany(t, s, "Borneo Freight")

	ali := seedEmployee(t, s, acme.ID, "Ali Rahman", "ali@acme.test")
	seedEmployee(t, s, acme.ID, "Budi Santoso", "budi@acme.test")
	seedEmployee(t, s, other.ID, "Citra Dewi", "citra@borneo.test")

	// Archive one of Acme's employees.
	archived := ali
	archived.Status = employee.StatusArchived
	assert.NoError(t, s.Employees().Update(ctx, &archived))

	assert.NoError(t, s.Leaves().Create(ctx, &leave.Leave{
		ID: uuid.New(), CompanyID: acme.ID, EmployeeID: ali.ID, Status: leave.StatusPending,
	}))
	assert.NoError(t, s.Leaves().Create(ctx, &leave.Leave{
		ID: uuid.New(), CompanyID: acme.ID, EmployeeID: ali.ID, Status: leave.StatusApproved,
	}))
	assert.NoError(t, s.Leaves().Create(ctx, &leave.Leave{
		ID: uuid.New(), CompanyID: other.ID, EmployeeID: uuid.New(), Status: leave.StatusPending,
	}))

	total, err := s.Companies().CountEmployees(ctx, acme.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	active, err := s.Companies().CountActiveEmployees(ctx, acme.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), active)

	pending, err := s.Companies().CountPendingLeaves(ctx, acme.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	// Listings agree with the counts.
	visible, err := s.Employees().FindAllByCompany(ctx, acme.ID.String(), false)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := s.Employees().FindAllByCompany(ctx, acme.ID.String(), true)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_ExpiringLicenseCutoffIsInclusive(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	acme := seedCompany(t, s, "Acme Logistics")
	cutoff := fixedNow.Add(license.ExpiringWindow)

	onCutoff := license.License{ID: uuid.New(), CompanyID: acme.ID, Name: "Operating Permit", ExpiryDate: cutoff}
	pastCutoff := license.License{ID: uuid.New(), CompanyID: acme.ID, Name: "Fleet Permit", ExpiryDate: cutoff.Add(time.Second)}
	alreadyExpired := license.License{ID: uuid.New(), CompanyID: acme.ID, Name: "Old Permit", ExpiryDate: fixedNow.Add(-24 * time.Hour)}
	assert.NoError(t, s.Licenses().Create(ctx, &onCutoff))
	assert.NoError(t, s.Licenses().Create(ctx, &pastCutoff))
	assert.NoError(t, s.Licenses().Create(ctx, &alreadyExpired))

	count, err := s.Companies().CountExpiringLicenses(ctx, acme.ID.String(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	expiring, err := s.Licenses().FindExpiring(ctx, acme.ID.String(), cutoff)
	assert.NoError(t, err)
	assert.Len(t, expiring, 2)
	for _, l := range expiring {
		assert.NotEqual(t, pastCutoff.ID, l.ID)
	}
}

func TestStore_LicenseDeleteUnassignsEmployees(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	acme := seedCompany(t, s, "Acme Logistics")

	l := license.License{ID: uuid.New(), CompanyID: acme.ID, Name: "Operating Permit", ExpiryDate: fixedNow.Add(48 * time.Hour)}
	assert.NoError(t, s.Licenses().Create(ctx, &l))

	ali := seedEmployee(t, s, acme.ID, "Ali Rahman", "ali@acme.test")
	ali.LicenseID = &l.ID
	assert.NoError(t, s.Employees().Update(ctx, &ali))

	details, err := s.Licenses().FindDetails(ctx, acme.ID.String(), l.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "Acme Logistics", details.CompanyName)
	assert.Equal(t, int64(1), details.EmployeeCount)

	assert.NoError(t, s.Licenses().Delete(ctx, acme.ID.String(), l.ID.String()))

	got, err := s.Employees().FindByIDAndCompany(ctx, acme.ID.String(), ali.ID.String())
	assert.NoError(t, err)
	assert.Nil(t, got.LicenseID)

	// Deleting again is a no-op.
	assert.NoError(t, s.Licenses().Delete(ctx, acme.ID.String(), l.ID.String()))
}

func TestStore_CompanyDependentsAndDelete(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	acme := seedCompany(t, s, "Acme Logistics")

	has, err := s.Companies().HasDependents(ctx, acme.ID.String())
	assert.NoError(t, err)
	assert.False(t, has)

	seedEmployee(t, s, acme.ID, "Ali Rahman", "ali@acme.test")

	has, err = s.Companies().HasDependents(ctx, acme.ID.String())
	assert.NoError(t, err)
	assert.True(t, has)

	empty := seedCompany(t, s, "Borneo Freight")
	assert.NoError(t, s.Companies().Delete(ctx, empty.ID.String()))
	assert.NoError(t, s.Companies().Delete(ctx, empty.ID.String()))

	_, err = s.Companies().FindByID(ctx, empty.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	remaining, err := s.Companies().FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, acme.ID, remaining[0].ID)
}

func TestStore_EmployeeUniqueConstraints(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	acme := seedCompany(t, s, "Acme Logistics")

	first := employee.Employee{
		ID: uuid.New(), CompanyID: acme.ID,
		FullName: "Ali Rahman", Email: "ali@acme.test", EmployeeNumber: "EMP-0001",
		Status: employee.StatusActive,
	}
	assert.NoError(t, s.Employees().Create(ctx, &first))

	dupEmail := employee.Employee{
		ID: uuid.New(), CompanyID: acme.ID,
		FullName: "Imposter", Email: "ali@acme.test", EmployeeNumber: "EMP-0002",
		Status: employee.StatusActive,
	}
	err := s.Employees().Create(ctx, &dupEmail)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "uq_employee_email")

	dupNumber := employee.Employee{
		ID: uuid.New(), CompanyID: acme.ID,
		FullName: "Budi Santoso", Email: "budi@acme.test", EmployeeNumber: "EMP-0001",
		Status: employee.StatusActive,
	}
	err = s.Employees().Create(ctx, &dupNumber)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "uq_employee_number")

	second := employee.Employee{
		ID: uuid.New(), CompanyID: acme.ID,
		FullName: "Budi Santoso", Email: "budi@acme.test", EmployeeNumber: "EMP-0002",
		Status: employee.StatusActive,
	}
	assert.NoError(t, s.Employees().Create(ctx, &second))

	// Updates re-check uniqueness against everyone but the row itself.
	second.Email = "ali@acme.test"
	err = s.Employees().Update(ctx, &second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "uq_employee_email")

	second.Email = "budi@acme.test"
	second.Position = "dispatcher"
	assert.NoError(t, s.Employees().Update(ctx, &second))
}

func TestStore_UpdateMissingRowReturnsNotFound(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	err := s.Companies().Update(ctx, &company.Company{ID: uuid.New(), Name: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = s.Employees().Update(ctx, &employee.Employee{ID: uuid.New()})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = s.Leaves().Update(ctx, &leave.Leave{ID: uuid.New()})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStore_CounterSequencesPerCompanyAndType(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	acme := uuid.New().String()
	borneo := uuid.New().String()

	for want := int64(1); want <= 3; want++ {
		got, err := s.Counters().GetNextValue(ctx, acme, "employee_number")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := s.Counters().GetNextValue(ctx, borneo, "employee_number")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)

	got, err = s.Counters().GetNextValue(ctx, acme, "invoice_number")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestStore_MembershipUniquePerUserAndCompany(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()

	first := companyuser.CompanyUser{ID: uuid.New(), UserID: userID, CompanyID: companyID, Role: "admin"}
	assert.NoError(t, s.Memberships().Create(ctx, &first))

	dup := companyuser.CompanyUser{ID: uuid.New(), UserID: userID, CompanyID: companyID, Role: "viewer"}
	err := s.Memberships().Create(ctx, &dup)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "uq_company_user")

	// Same user in another company is fine.
	elsewhere := companyuser.CompanyUser{ID: uuid.New(), UserID: userID, CompanyID: uuid.New(), Role: "owner"}
	assert.NoError(t, s.Memberships().Create(ctx, &elsewhere))

	mine, err := s.Memberships().FindAllByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
}

// The services run unchanged on top of the store; walk one company through
// hiring, licensing and a leave approval end to end.
func TestStore_ServicesEndToEnd(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	companySvc := company.NewServiceWithClock(s.Companies(), func() time.Time { return fixedNow })
	employeeSvc := employee.NewService(s.Employees(), s.Counters(), nil)
	licenseSvc := license.NewServiceWithClock(s.Licenses(), func() time.Time { return fixedNow })
	leaveSvc := leave.NewService(s.Leaves())

	acme, err := companySvc.Create(ctx, company.CreateCompanyRequest{
		Name: "Acme Logistics", Email: "ops@acme.test", Industry: "logistics",
	})
	assert.NoError(t, err)

	ali, err := employeeSvc.Create(ctx, acme.ID, employee.CreateEmployeeRequest{
		FullName: "Ali Rahman", Email: "ali@acme.test", Position: "driver",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-0001", ali.EmployeeNumber)

	permit, err := licenseSvc.Create(ctx, acme.ID, license.CreateLicenseRequest{
		Name:       "Operating Permit",
		ExpiryDate: fixedNow.Add(7 * 24 * time.Hour).Format("2006-01-02"),
	})
	assert.NoError(t, err)

	assigned, err := employeeSvc.AssignLicense(ctx, acme.ID, ali.ID, permit.ID)
	assert.NoError(t, err)
	assert.NotNil(t, assigned.LicenseID)

	manager := uuid.New().String()
	req, err := leaveSvc.Create(ctx, acme.ID, ali.ID, leave.CreateLeaveRequest{
		EmployeeID: ali.ID,
		LeaveType:  "annual",
		StartDate:  "2026-06-10",
		EndDate:    "2026-06-12",
		Reason:     "family visit",
	})
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusPending, req.Status)

	stats, err := companySvc.GetStats(ctx, acme.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.ActiveEmployees)
	assert.Equal(t, int64(1), stats.PendingLeaves)
	assert.Equal(t, int64(1), stats.ExpiringLicenses)

	approved, err := leaveSvc.Approve(ctx, acme.ID, manager, req.ID)
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	stats, err = companySvc.GetStats(ctx, acme.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.PendingLeaves)

	details, err := licenseSvc.GetByID(ctx, acme.ID, permit.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Acme Logistics", details.CompanyName)
	assert.Equal(t, int64(1), details.EmployeeCount)
}
