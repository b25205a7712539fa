package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-hradmin/internal/company"
	"go-hradmin/internal/companyuser"
	"go-hradmin/internal/deduction"
	"go-hradmin/internal/document"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leave"
	"go-hradmin/internal/license"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/notification"
	"go-hradmin/internal/rbac"
	"go-hradmin/internal/shared/connection"
	"go-hradmin/internal/shared/counter"
	"go-hradmin/internal/storage/memory"
	"go-hradmin/internal/violation"
)

// BuildApp wires storage, cache, and all module routes onto the router.
// STORAGE_DRIVER=memory runs without postgres and kafka, everything
// else connects to postgres.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	rdb := connectRedisOptional(logger)

	var repos repositories
	if os.Getenv("STORAGE_DRIVER") == "memory" {
		store := memory.NewStore()
		repos = memoryRepositories(store)
		logger.Info("storage driver: memory")
	} else {
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

		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}

		repos = gormRepositories(gormDB)
		repos.outbox = kafka.NewOutboxRepository(sqlDB)
		logger.Info("storage driver: postgres")
	}

	return registerModules(router, repos, rdb)
}

// connectRedisOptional treats a missing REDIS_ADDR as "run without a
// cache"; services degrade to direct reads.
func connectRedisOptional(logger *zap.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Warn("REDIS_ADDR not set, caching disabled")
		return nil
	}

	rdb, err := connection.ConnectRedisWithRetry(addr, 5)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		return nil
	}
	return rdb
}

func gormRepositories(gormDB *gorm.DB) repositories {
	membershipRepo := companyuser.NewGormRepository(gormDB)
	return repositories{
		company:      company.NewRepository(gormDB),
		employee:     employee.NewRepository(gormDB),
		license:      license.NewRepository(gormDB),
		leave:        leave.NewRepository(gormDB),
		deduction:    deduction.NewGormRepository(gormDB),
		violation:    violation.NewGormRepository(gormDB),
		document:     document.NewGormRepository(gormDB),
		notification: notification.NewGormRepository(gormDB),
		membership:   membershipRepo,
		counter:      counter.NewRepository(gormDB),
		rbac:         rbac.NewRepository(gormDB),
	}
}

func memoryRepositories(store *memory.Store) repositories {
	return repositories{
		company:      store.Companies(),
		employee:     store.Employees(),
		license:      store.Licenses(),
		leave:        store.Leaves(),
		deduction:    store.Deductions(),
		violation:    store.Violations(),
		document:     store.Documents(),
		notification: store.Notifications(),
		membership:   store.Memberships(),
		counter:      store.Counters(),
		rbac:         rbac.NewMembershipRepository(store.Memberships()),
	}
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&company.Company{},
		&employee.Employee{},
		&license.License{},
		&leave.Leave{},
		&deduction.Deduction{},
		&violation.Violation{},
		&document.Document{},
		&notification.Notification{},
		&companyuser.CompanyUser{},
	); err != nil {
		return err
	}

	// Raw-SQL repos manage these tables outside gorm models.
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS company_counters (
			company_id uuid NOT NULL,
			counter_type varchar(50) NOT NULL,
			last_value bigint NOT NULL DEFAULT 0,
			updated_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (company_id, counter_type)
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id uuid PRIMARY KEY,
			request_id varchar(100),
			aggregate_type varchar(100) NOT NULL,
			aggregate_id varchar(100) NOT NULL,
			event_type varchar(100) NOT NULL,
			topic varchar(200) NOT NULL,
			payload jsonb NOT NULL,
			status varchar(20) NOT NULL DEFAULT 'pending',
			retry_count int NOT NULL DEFAULT 0,
			last_error text,
			next_retry_at timestamptz,
			created_at timestamptz NOT NULL DEFAULT now(),
			sent_at timestamptz
		)`,
	}
	for _, stmt := range ddl {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
