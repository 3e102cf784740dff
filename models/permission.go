package models

// Permission represents a single admin-panel action
type Permission string

const (
	// Catalog permissions
	PermissionManageProducts Permission = "manage:products"

	// Order permissions
	PermissionListOrders  Permission = "list:orders"
	PermissionUpdateOrder Permission = "update:order"

	// Community permissions
	PermissionManageReviews   Permission = "manage:reviews"
	PermissionManageQuestions Permission = "manage:questions"

	// Reporting and AI permissions
	PermissionViewReports Permission = "view:reports"
	PermissionUseAI       Permission = "use:ai"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[string][]Permission{
	"master_admin": {
		PermissionManageProducts,
		PermissionListOrders,
		PermissionUpdateOrder,
		PermissionManageReviews,
		PermissionManageQuestions,
		PermissionViewReports,
		PermissionUseAI,
	},
	"staff": {
		PermissionListOrders,
		PermissionUpdateOrder,
		PermissionManageQuestions,
	},
}
