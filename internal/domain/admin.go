package domain

const RoleAdmin = "admin"

// AdminUser is the single back-office account. It is configured, not stored.
type AdminUser struct {
	AdminID          string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	PasswordHash     string `json:"-"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}
