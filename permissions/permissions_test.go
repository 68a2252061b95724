package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasFullAccess(t *testing.T) {
	for _, resource := range []string{"inventory", "transactions", "users"} {
		for _, action := range []string{"create", "read", "update", "delete"} {
			assert.True(t, HasPermission("admin", resource, action), "%s %s", resource, action)
		}
	}
	assert.True(t, HasPermission("admin", "reports", "export"))
	assert.True(t, HasPermission("admin", "settings", "update"))
}

func TestManagerScope(t *testing.T) {
	assert.True(t, HasPermission("manager", "inventory", "create"))
	assert.True(t, HasPermission("manager", "inventory", "update"))
	assert.True(t, HasPermission("manager", "reports", "export"))
	assert.True(t, HasPermission("manager", "users", "read"))

	assert.False(t, HasPermission("manager", "inventory", "delete"))
	assert.False(t, HasPermission("manager", "users", "create"))
	assert.False(t, HasPermission("manager", "users", "delete"))
	assert.False(t, HasPermission("manager", "settings", "read"))
}

func TestUserIsReadOnly(t *testing.T) {
	assert.True(t, HasPermission("user", "inventory", "read"))
	assert.True(t, HasPermission("user", "transactions", "read"))
	assert.True(t, HasPermission("user", "reports", "read"))

	assert.False(t, HasPermission("user", "inventory", "create"))
	assert.False(t, HasPermission("user", "transactions", "create"))
	assert.False(t, HasPermission("user", "reports", "export"))
	assert.False(t, HasPermission("user", "users", "read"))
	assert.False(t, HasPermission("user", "settings", "read"))
}

func TestUnknownRoleDeniedEverything(t *testing.T) {
	assert.False(t, HasPermission("", "inventory", "read"))
	assert.False(t, HasPermission("superadmin", "inventory", "read"))
	assert.False(t, HasPermission("admin", "inventory", "approve"))
	assert.False(t, HasPermission("admin", "audit", "read"))
}
