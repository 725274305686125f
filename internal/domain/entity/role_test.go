package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleSalon.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("merchant").IsValid())
}

func TestRoleFromString(t *testing.T) {
	role, ok := RoleFromString("salon")
	assert.True(t, ok)
	assert.Equal(t, RoleSalon, role)

	_, ok = RoleFromString("superuser")
	assert.False(t, ok)
}
