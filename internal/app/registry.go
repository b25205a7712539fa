package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-hradmin/internal/company"
	"go-hradmin/internal/companyuser"
	"go-hradmin/internal/deduction"
	"go-hradmin/internal/document"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leave"
	"go-hradmin/internal/license"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/middleware"
	"go-hradmin/internal/notification"
	"go-hradmin/internal/rbac"
	"go-hradmin/internal/rbac/infra"
	"go-hradmin/internal/shared/counter"
	"go-hradmin/internal/violation"
)

// repositories is the storage surface the registry wires services to.
// Either driver (postgres or memory) fills all fields; outbox stays nil
// when the driver has no relational outbox.
type repositories struct {
	company      company.Repository
	employee     employee.Repository
	license      license.Repository
	leave        leave.Repository
	deduction    deduction.Repository
	violation    violation.Repository
	document     document.Repository
	notification notification.Repository
	membership   companyuser.Repository
	counter      counter.Repository
	rbac         rbac.Repository
	outbox       kafka.OutboxRepository
}

func registerModules(
	router *gin.Engine,
	repos repositories,
	rdb *redis.Client,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(repos.rbac, enforcer)

	// --- Services ---
	companyService := company.NewService(repos.company)
	employeeService := employee.NewServiceWithOutbox(repos.employee, repos.counter, repos.outbox, rdb)
	licenseService := license.NewService(repos.license)
	leaveService := leave.NewServiceWithOutbox(repos.leave, repos.outbox)
	deductionService := deduction.NewService(repos.deduction)
	violationService := violation.NewService(repos.violation)
	documentService := document.NewService(repos.document)
	notificationService := notification.NewService(repos.notification, rdb)
	membershipService := companyuser.NewService(repos.membership)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	licenseHandler := license.NewHandler(licenseService)
	leaveHandler := leave.NewHandler(leaveService)
	deductionHandler := deduction.NewHandler(deductionService)
	violationHandler := violation.NewHandler(violationService)
	documentHandler := document.NewHandler(documentService)
	notificationHandler := notification.NewHandler(notificationService)
	membershipHandler := companyuser.NewHandler(membershipService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		license.RegisterRoutes(api, licenseHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		deduction.RegisterRoutes(api, deductionHandler, rbacService)
		violation.RegisterRoutes(api, violationHandler, rbacService)
		document.RegisterRoutes(api, documentHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		companyuser.RegisterRoutes(api, membershipHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
