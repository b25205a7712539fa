package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-hradmin/internal/company"
	"go-hradmin/internal/companyuser"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leave"
	"go-hradmin/internal/license"
	"go-hradmin/internal/shared/connection"
	"go-hradmin/internal/shared/counter"
)

// Fixture is the bulk import document: companies with their nested
// records. Employee leave references are by list position since the
// fixture has no ids.
type Fixture struct {
	Companies []FixtureCompany `json:"companies"`
}

type FixtureCompany struct {
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Industry  string              `json:"industry"`
	Licenses  []FixtureLicense    `json:"licenses"`
	Employees []FixtureEmployee   `json:"employees"`
	Members   []FixtureMembership `json:"members"`
}

type FixtureLicense struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	ExpiryDate    string `json:"expiry_date"`
}

type FixtureEmployee struct {
	FullName string         `json:"full_name"`
	Email    string         `json:"email"`
	Position string         `json:"position"`
	Leaves   []FixtureLeave `json:"leaves"`
}

type FixtureLeave struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type FixtureMembership struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// RunImporter loads a JSON fixture through the services so every
// invariant and side effect of the normal write path applies.
func RunImporter(path string) error {
	logger := zap.L().Named("app.importer")

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("decode fixture: %w", err)
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	if err := migrate(gormDB); err != nil {
		return err
	}

	companyService := company.NewService(company.NewRepository(gormDB))
	employeeService := employee.NewService(employee.NewRepository(gormDB), counter.NewRepository(gormDB), nil)
	licenseService := license.NewService(license.NewRepository(gormDB))
	leaveService := leave.NewService(leave.NewRepository(gormDB))
	membershipService := companyuser.NewService(companyuser.NewGormRepository(gormDB))

	ctx := context.Background()
	actorID := uuid.New().String()

	for _, fc := range fixture.Companies {
		c, err := companyService.Create(ctx, company.CreateCompanyRequest{
			Name:     fc.Name,
			Email:    fc.Email,
			Phone:    fc.Phone,
			Industry: fc.Industry,
		})
		if err != nil {
			return fmt.Errorf("import company %q: %w", fc.Name, err)
		}

		for _, fl := range fc.Licenses {
			if _, err := licenseService.Create(ctx, c.ID, license.CreateLicenseRequest{
				Name:          fl.Name,
				LicenseNumber: fl.LicenseNumber,
				ExpiryDate:    fl.ExpiryDate,
			}); err != nil {
				return fmt.Errorf("import license %q: %w", fl.Name, err)
			}
		}

		for _, fe := range fc.Employees {
			e, err := employeeService.Create(ctx, c.ID, employee.CreateEmployeeRequest{
				FullName: fe.FullName,
				Email:    fe.Email,
				Position: fe.Position,
			})
			if err != nil {
				return fmt.Errorf("import employee %q: %w", fe.FullName, err)
			}

			for _, fl := range fe.Leaves {
				if _, err := leaveService.Create(ctx, c.ID, actorID, leave.CreateLeaveRequest{
					EmployeeID: e.ID,
					LeaveType:  fl.LeaveType,
					StartDate:  fl.StartDate,
					EndDate:    fl.EndDate,
					Reason:     fl.Reason,
				}); err != nil {
					return fmt.Errorf("import leave for %q: %w", fe.FullName, err)
				}
			}
		}

		for _, fm := range fc.Members {
			if _, err := membershipService.Create(ctx, c.ID, companyuser.CreateMembershipRequest{
				UserID:      fm.UserID,
				Role:        fm.Role,
				Permissions: fm.Permissions,
			}); err != nil {
				return fmt.Errorf("import membership for %q: %w", fm.UserID, err)
			}
		}

		logger.Info("company imported",
			zap.String("company_id", c.ID),
			zap.String("name", fc.Name),
			zap.Int("employees", len(fc.Employees)),
			zap.Int("licenses", len(fc.Licenses)),
		)
	}

	logger.Info("import finished", zap.Int("companies", len(fixture.Companies)))
	return nil
}
