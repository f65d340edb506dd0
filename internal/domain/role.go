package domain

// Role restricts what a signed-in user may do. Admins manage the catalog and
// back office; customers only get the public storefront surface.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// AllRoles contains all valid roles
var AllRoles = []Role{RoleAdmin, RoleCustomer}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
