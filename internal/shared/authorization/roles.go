package authorization

type Role string

const (
	RoleInvestor     Role = "investor"
	RoleProjectOwner Role = "project_owner"
	RoleAdmin        Role = "admin"
	// RoleUnassigned is transient: new OAuth signups hold it until they pick
	// investor or project_owner.
	RoleUnassigned Role = "unassigned"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsAssigned() bool {
	return r == RoleInvestor || r == RoleProjectOwner || r == RoleAdmin
}

func (r Role) IsValid() bool {
	return r.IsAssigned() || r == RoleUnassigned
}

// IsSelectable reports whether a user may pick this role for themselves
// after an OAuth signup. Admin is never self-selectable.
func (r Role) IsSelectable() bool {
	return r == RoleInvestor || r == RoleProjectOwner
}

func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleUnassigned
}
