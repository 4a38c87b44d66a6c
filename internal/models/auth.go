package models

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response. MustChangePassword
// tells the client to force the password-change flow before anything else.
type LoginResponse struct {
	Token              string `json:"token"`
	MustChangePassword bool   `json:"must_change_password"`
	Driver             Driver `json:"driver"`
}

// Claims carries the driver identity decoded from a validated JWT.
// Expiry is enforced during parsing and not surfaced here.
type Claims struct {
	DriverID        string `json:"driver_id"`
	Username        string `json:"username"`
	PasswordChanged bool   `json:"password_changed"`
}
