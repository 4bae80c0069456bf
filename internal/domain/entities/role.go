package entities

// Role represents the role of a user in the system. Roles come from the
// external OAuth provider and are stored verbatim on the users table.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission represents a specific capability on the admin surface.
type Permission string

const (
	// Catalog permissions (models, creators, videos, voices, writing, banners)
	PermissionCatalogRead   Permission = "catalog.read"
	PermissionCatalogWrite  Permission = "catalog.write"
	PermissionCatalogDelete Permission = "catalog.delete"

	// Service request permissions
	PermissionRequestRead  Permission = "requests.read"
	PermissionRequestWrite Permission = "requests.write"

	// Upload permission
	PermissionUploadWrite Permission = "uploads.write"
)

// RolePermissions maps roles to their permissions.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionCatalogRead,
		PermissionCatalogWrite,
		PermissionCatalogDelete,
		PermissionRequestRead,
		PermissionRequestWrite,
		PermissionUploadWrite,
	},
	RoleUser: {
		PermissionCatalogRead,
	},
}

// GetPermissions returns the permissions of a role.
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission reports whether the role carries the permission.
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
