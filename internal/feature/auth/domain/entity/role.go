package entity

import "strings"

// Role is the authorization role carried by a user and its access token.
type Role string

const (
	RoleUser         Role = "USER"
	RoleOrganization Role = "ORGANIZATION"
	RoleAdmin        Role = "ADMIN"
)

// registrableRoles are the roles a client may request at sign up.
// Admin accounts are provisioned directly in storage.
var registrableRoles = map[Role]struct{}{
	RoleUser:         {},
	RoleOrganization: {},
}

// ParseRegistrableRole normalizes s and reports whether it names a role open to registration.
func ParseRegistrableRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := registrableRoles[r]; !ok {
		return "", false
	}
	return r, true
}

func (r Role) String() string { return string(r) }
