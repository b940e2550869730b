package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusKnown(t *testing.T) {
	assert.True(t, StatusTodo.Known())
	assert.True(t, StatusInProgress.Known())
	assert.True(t, StatusDone.Known())
	assert.False(t, TaskStatus("archived").Known())
	assert.False(t, TaskStatus("").Known())
}

func TestTaskPriorityKnown(t *testing.T) {
	assert.True(t, PriorityLow.Known())
	assert.True(t, PriorityMedium.Known())
	assert.True(t, PriorityHigh.Known())
	assert.False(t, TaskPriority("urgent").Known())
}

func TestAuthContextHasPermission(t *testing.T) {
	ac := &AuthContext{
		Permissions: []Permission{
			{Action: "task:create"},
			{Action: "analytics:read"},
		},
	}

	assert.True(t, ac.HasPermission("task:create"))
	assert.True(t, ac.HasPermission("analytics:read"))
	assert.False(t, ac.HasPermission("user:update_role"))
	assert.False(t, ac.HasPermission(""))
}

func TestDefaultRolePermissions(t *testing.T) {
	require.Len(t, DefaultRoles, 2)

	var admin, user *Role
	for i := range DefaultRoles {
		switch DefaultRoles[i].Name {
		case RoleAdmin:
			admin = &DefaultRoles[i]
		case RoleUser:
			user = &DefaultRoles[i]
		}
	}
	require.NotNil(t, admin)
	require.NotNil(t, user)

	adminCtx := &AuthContext{Permissions: admin.Permissions}
	userCtx := &AuthContext{Permissions: user.Permissions}

	// Only admins manage roles or delete projects.
	assert.True(t, adminCtx.HasPermission("user:update_role"))
	assert.True(t, adminCtx.HasPermission("project:delete"))
	assert.False(t, userCtx.HasPermission("user:update_role"))
	assert.False(t, userCtx.HasPermission("project:delete"))

	// Everyone reads analytics and works with tasks.
	for _, ctx := range []*AuthContext{adminCtx, userCtx} {
		assert.True(t, ctx.HasPermission("analytics:read"))
		assert.True(t, ctx.HasPermission("dashboard:read"))
		assert.True(t, ctx.HasPermission("task:create"))
		assert.True(t, ctx.HasPermission("comment:create"))
	}
}
