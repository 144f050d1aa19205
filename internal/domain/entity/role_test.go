package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"operator", "root", ""})

	assert.Equal(t, Roles{RoleOperator}, roles)
	assert.True(t, roles.Contains(RoleOperator))
	assert.False(t, roles.Contains(Role("root")))
	assert.Equal(t, []string{"operator"}, roles.ToStrings())
}
