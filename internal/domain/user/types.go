package user

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleReception Role = "reception"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleReception, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may perform front-desk operations
// (check-in, check-out, no-show, room administration).
func (r Role) IsStaff() bool {
	return r == RoleReception || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
