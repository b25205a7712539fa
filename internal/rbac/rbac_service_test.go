package rbac

import (
	"context"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"

	"go-hradmin/internal/domain"
)

type mockRepo struct {
	rows map[string][]MembershipRow
}

func (m *mockRepo) GetMemberships(_ context.Context, companyID string) ([]MembershipRow, error) {
	return m.rows[companyID], nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &mockRepo{rows: map[string][]MembershipRow{
		"company-1": {
			{UserID: "user-owner", Role: "owner"},
			{UserID: "user-viewer", Role: "viewer"},
		},
	}}
	service := NewService(repo, newTestEnforcer(t))

	t.Run("owner gets every action", func(t *testing.T) {
		for _, action := range []string{"read", "create", "update", "delete", "approve", "archive"} {
			allowed, err := service.Enforce(domain.EnforceRequest{
				UserID:    "user-owner",
				CompanyID: "company-1",
				Resource:  "employee",
				Action:    action,
			})
			assert.NoError(t, err)
			assert.True(t, allowed, action)
		}
	})

	t.Run("viewer is read only", func(t *testing.T) {
		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:    "user-viewer",
			CompanyID: "company-1",
			Resource:  "leave",
			Action:    "read",
		})
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = service.Enforce(domain.EnforceRequest{
			UserID:    "user-viewer",
			CompanyID: "company-1",
			Resource:  "leave",
			Action:    "approve",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("membership does not leak across companies", func(t *testing.T) {
		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:    "user-owner",
			CompanyID: "company-2",
			Resource:  "employee",
			Action:    "read",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestRBACService_PerUserOverrides(t *testing.T) {
	repo := &mockRepo{rows: map[string][]MembershipRow{
		"company-1": {
			{
				UserID:      "user-viewer",
				Role:        "viewer",
				Permissions: []string{"leave:approve", "not-a-permission"},
			},
		},
	}}
	service := NewService(repo, newTestEnforcer(t))

	// The override grants approve on top of the viewer role.
	allowed, err := service.Enforce(domain.EnforceRequest{
		UserID:    "user-viewer",
		CompanyID: "company-1",
		Resource:  "leave",
		Action:    "approve",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	// Other resources stay read only.
	allowed, err = service.Enforce(domain.EnforceRequest{
		UserID:    "user-viewer",
		CompanyID: "company-1",
		Resource:  "employee",
		Action:    "delete",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}
