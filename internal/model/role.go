package model

// Role is a closed set. Anything outside it is rejected at the auth boundary
// instead of being branched on as a raw string.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}
