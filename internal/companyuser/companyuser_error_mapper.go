package companyuser

import (
	"errors"
	"strings"

	companyusererrors "go-hradmin/internal/companyuser/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyusererrors.ErrMembershipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_company_user" {
			return companyusererrors.ErrDuplicateMembership
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_company_user") {
		return companyusererrors.ErrDuplicateMembership
	}

	return err
}
