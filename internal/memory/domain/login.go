package domain

// Role who unlocked
type Role string

const (
	// RoleAdmin unlocked with the admin override
	RoleAdmin Role = "admin"
	// RoleUser unlocked with the stored unlock code
	RoleUser Role = "user"
)

// ReasonWrongCode code matched neither admin override nor unlock code
const ReasonWrongCode = "wrong_code"

// LoginResult outcome of a code check, a denial is a result not an error
type LoginResult struct {
	Success bool   `json:"success"`
	Role    Role   `json:"role,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Granted successful login
func Granted(role Role) LoginResult {
	return LoginResult{Success: true, Role: role}
}

// Denied wrong code
func Denied() LoginResult {
	return LoginResult{Success: false, Reason: ReasonWrongCode}
}
