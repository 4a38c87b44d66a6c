package models

// Driver represents a driver account. Credentials are stored verbatim and
// compared verbatim on login; PasswordChanged forces a one-time password
// reset on first login for freshly created drivers.
type Driver struct {
	ID              string `json:"id" bson:"id"`
	Name            string `json:"name" bson:"name"`
	License         string `json:"license" bson:"license"`
	Username        string `json:"username" bson:"username"`
	Password        string `json:"password,omitempty" bson:"password,omitempty"`
	PasswordChanged bool   `json:"password_changed" bson:"password_changed"`
	ActiveVehicleID string `json:"active_vehicle_id,omitempty" bson:"active_vehicle_id,omitempty"`
	Avatar          string `json:"avatar,omitempty" bson:"avatar,omitempty"` // data-URI image
}
