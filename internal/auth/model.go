package auth

// Staff is a kiosk operator account. Cashiers run the lanes; managers
// additionally maintain the menu.
type Staff struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleCashier = "CASHIER"
	RoleManager = "MANAGER"
)

func ValidRole(role string) bool {
	return role == RoleCashier || role == RoleManager
}
