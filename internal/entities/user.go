package entities

import "time"

// User is read-only to this service: accounts and credentials are
// managed elsewhere, only the role feeds authorization decisions.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      RoleType
	CreatedAt time.Time
}

type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleMerchant RoleType = "merchant"
	RoleDriver   RoleType = "driver"
	RoleHubStaff RoleType = "hub_staff"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleMerchant, RoleDriver, RoleHubStaff:
		return true
	default:
		return false
	}
}
