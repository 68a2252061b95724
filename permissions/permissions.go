// Package permissions holds the static role to capability mapping. It is a
// plain lookup table: absence of a permission is a normal false result, never
// an error, and unknown roles get nothing.
package permissions

type Permission struct {
	Resource string
	Actions  []string
}

var rolePermissions = map[string][]Permission{
	"admin": {
		{Resource: "inventory", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "transactions", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "reports", Actions: []string{"create", "read", "export"}},
		{Resource: "users", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "settings", Actions: []string{"read", "update"}},
	},
	"manager": {
		{Resource: "inventory", Actions: []string{"create", "read", "update"}},
		{Resource: "transactions", Actions: []string{"create", "read", "update"}},
		{Resource: "reports", Actions: []string{"read", "export"}},
		{Resource: "users", Actions: []string{"read"}},
	},
	"user": {
		{Resource: "inventory", Actions: []string{"read"}},
		{Resource: "transactions", Actions: []string{"read"}},
		{Resource: "reports", Actions: []string{"read"}},
	},
}

// HasPermission reports whether the role may perform action on resource.
func HasPermission(role, resource, action string) bool {
	for _, p := range rolePermissions[role] {
		if p.Resource != resource {
			continue
		}
		for _, a := range p.Actions {
			if a == action {
				return true
			}
		}
	}
	return false
}
