package account

// Role is the account type chosen at sign-up.
type Role string

const (
	// RoleUser is a buyer account.
	RoleUser Role = "user"
	// RoleAdmin is a supplier (seller) account.
	RoleAdmin Role = "admin"
)

// Post-submit destinations.
const (
	SignInPath            = "/signin"
	SupplierDashboardPath = "/dashboard"
	BuyerDashboardPath    = "/buyer-dashboard"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// DashboardPath returns where a signed-in user of this role lands.
// Anything other than RoleAdmin goes to the buyer dashboard.
func (r Role) DashboardPath() string {
	if r == RoleAdmin {
		return SupplierDashboardPath
	}
	return BuyerDashboardPath
}
