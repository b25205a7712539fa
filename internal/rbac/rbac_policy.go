package rbac

// Baseline grants per membership role. Per-user permission overrides
// from the membership record are added on top of these.

var resources = []string{
	"company", "employee", "license", "leave",
	"deduction", "violation", "document", "notification", "member",
}

var allActions = []string{"read", "create", "update", "delete", "approve", "archive"}

var roleActions = map[string][]string{
	"owner":   allActions,
	"admin":   allActions,
	"manager": {"read", "create", "update", "approve", "archive"},
	"viewer":  {"read"},
}

type grant struct {
	Resource string
	Action   string
}

func grantsForRole(role string) []grant {
	actions, ok := roleActions[role]
	if !ok {
		return nil
	}

	out := make([]grant, 0, len(resources)*len(actions))
	for _, res := range resources {
		for _, act := range actions {
			out = append(out, grant{Resource: res, Action: act})
		}
	}
	return out
}
