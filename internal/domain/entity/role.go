package entity

import "slices"

// Role is a permission carried by an admin token.
type Role string

// RoleOperator may inspect and control listeners and inject events.
const RoleOperator Role = "operator"

//nolint:gochecknoglobals
var knownRoles = []Role{RoleOperator}

// Roles are the roles granted to one token subject.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings is the claim form of rs.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = string(r)
	}

	return result
}

// RolesFromStrings reads token claims, dropping roles this build does not grant.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); slices.Contains(knownRoles, role) {
			result = append(result, role)
		}
	}

	return result
}
