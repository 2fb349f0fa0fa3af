package domain

import "encoding/json"

// Role is the closed set of portal roles. The backend omits the field for
// plain accounts, so decoding normalises absent or unknown values to RoleUser.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleGarage Role = "garage"
)

// ParseRole maps a raw backend role string to a Role, defaulting to RoleUser.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleGarage:
		return RoleGarage
	default:
		return RoleUser
	}
}

// User is the read-only profile cached from the backend.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UnmarshalJSON accepts documents keyed by either "id" or "_id" — the backend
// is inconsistent between the admin and garage endpoints — and exposes a
// single canonical ID.
func (u *User) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       string `json:"id"`
		LegacyID string `json:"_id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	u.ID = raw.ID
	if u.ID == "" {
		u.ID = raw.LegacyID
	}
	u.Username = raw.Username
	u.Email = raw.Email
	u.Role = ParseRole(raw.Role)
	return nil
}
