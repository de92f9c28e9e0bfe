package model

// Privilege represents a permission granted through roles
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Product"
}

// DefaultPrivileges are seeded on startup
var DefaultPrivileges = []Privilege{
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "role:view", Name: "View Role"},
	{Code: "role:create", Name: "Create Role"},
	{Code: "role:update", Name: "Update Role"},
	{Code: "product:create", Name: "Create Product"},
	{Code: "product:update", Name: "Update Product"},
	{Code: "product:delete", Name: "Delete Product"},
	{Code: "category:create", Name: "Create Category"},
	{Code: "category:update", Name: "Update Category"},
	{Code: "category:delete", Name: "Delete Category"},
	{Code: "slider:create", Name: "Create Slider"},
	{Code: "slider:update", Name: "Update Slider"},
	{Code: "slider:delete", Name: "Delete Slider"},
	{Code: "feature:create", Name: "Create Feature"},
	{Code: "feature:update", Name: "Update Feature"},
	{Code: "feature:delete", Name: "Delete Feature"},
	{Code: "coupon:create", Name: "Create Coupon"},
	{Code: "coupon:update", Name: "Update Coupon"},
	{Code: "coupon:delete", Name: "Delete Coupon"},
	{Code: "content:update", Name: "Update Site Content"},
	{Code: "contact:view", Name: "View Customer Messages"},
	{Code: "contact:delete", Name: "Delete Customer Messages"},
	{Code: "order:view", Name: "View Order"},
	{Code: "order:update", Name: "Update Order"},
	{Code: "transaction:view", Name: "View Transaction"},
}
