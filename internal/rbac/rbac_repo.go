package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-hradmin/internal/companyuser"
)

// MembershipRow is the policy source: one row per user membership with
// its role and any per-user permission overrides.
type MembershipRow struct {
	UserID      string
	Role        string
	Permissions []string
}

type Repository interface {
	GetMemberships(ctx context.Context, companyID string) ([]MembershipRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetMemberships(ctx context.Context, companyID string) ([]MembershipRow, error) {
	var members []companyuser.CompanyUser
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return toRows(members), nil
}

// membershipRepository sources policies from a companyuser.Repository,
// which lets any storage driver feed the enforcer.
type membershipRepository struct {
	members companyuser.Repository
}

func NewMembershipRepository(members companyuser.Repository) Repository {
	return &membershipRepository{members: members}
}

func (r *membershipRepository) GetMemberships(ctx context.Context, companyID string) ([]MembershipRow, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, nil
	}

	members, err := r.members.FindAllByCompany(ctx, cid)
	if err != nil {
		return nil, err
	}
	return toRows(members), nil
}

func toRows(members []companyuser.CompanyUser) []MembershipRow {
	rows := make([]MembershipRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, MembershipRow{
			UserID:      m.UserID.String(),
			Role:        m.Role,
			Permissions: m.Permissions,
		})
	}
	return rows
}
