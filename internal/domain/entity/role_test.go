package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Grants(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required []Permission
		want     bool
	}{
		{name: "admin holds all rights", role: RoleAdmin, required: []Permission{PermGetUsers, PermManageUsers}, want: true},
		{name: "user lacks manageUsers", role: RoleUser, required: []Permission{PermManageUsers}, want: false},
		{name: "no requirement always granted", role: RoleUser, want: true},
		{name: "unknown role denied", role: Role("root"), required: []Permission{PermGetUsers}, want: false},
		{name: "partial match denied", role: RoleUser, required: []Permission{PermGetUsers, PermManageMessages}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Grants(tt.required...))
		})
	}
}

func TestRole_Rights_UnknownRoleIsEmpty(t *testing.T) {
	assert.Empty(t, Role("ghost").Rights())
	assert.False(t, Role("ghost").IsValid())
	assert.ElementsMatch(t, []Permission{PermGetUsers, PermManageUsers, PermManageMessages}, RoleAdmin.Rights())
}

func TestRole_Rights_ReturnsCopy(t *testing.T) {
	rights := RoleAdmin.Rights()
	rights[0] = "tampered"

	assert.True(t, RoleAdmin.Grants(PermGetUsers))
}
