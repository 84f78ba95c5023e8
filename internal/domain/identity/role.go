package identity

// Role represents a user's role in the shop
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleShopkeeper   Role = "shopkeeper"
	RoleStaff        Role = "staff"
	RoleCashier      Role = "cashier"
	RoleDelivery     Role = "delivery"
	RoleModerator    Role = "moderator"
	RoleEmployee     Role = "employee"
	RoleStoreManager Role = "storemanager"
	RoleUser         Role = "user"
)

// KnownRoles lists every accepted role value
var KnownRoles = []Role{
	RoleAdmin,
	RoleManager,
	RoleShopkeeper,
	RoleStaff,
	RoleCashier,
	RoleDelivery,
	RoleModerator,
	RoleEmployee,
	RoleStoreManager,
	RoleUser,
}

// IsValid returns true if the role is a known value
func (r Role) IsValid() bool {
	for _, known := range KnownRoles {
		if r == known {
			return true
		}
	}
	return false
}

// CanProcessOrders returns true for roles allowed to list all orders
// and write order status values
func (r Role) CanProcessOrders() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCashier, RoleManager:
		return true
	}
	return false
}

// HasPOSAccess returns true for roles allowed on the POS reporting surface
func (r Role) HasPOSAccess() bool {
	switch r {
	case RoleAdmin, RoleShopkeeper, RoleStaff, RoleCashier, RoleManager:
		return true
	}
	return false
}

// IsSalaried returns true for roles that carry a salary
func (r Role) IsSalaried() bool {
	return r != RoleUser && r.IsValid()
}
