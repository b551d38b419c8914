package models

// RoleName is the closed set of roles the storefront distinguishes.
// Authorization decisions compare against these constants exactly
// (case-sensitive), never against free-form strings.
type RoleName string

const (
	RoleAdmin RoleName = "Admin"
	RoleUser  RoleName = "User"
)

// Account is the server's representation of a user.
type Account struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	RoleName RoleName `json:"roleName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the data payload of POST /accounts/login.
type LoginResult struct {
	User  *Account `json:"user"`
	Token string   `json:"token"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountUpdateRequest changes a user's name and role assignment.
type AccountUpdateRequest struct {
	Name   string `json:"name"`
	RoleID int    `json:"roleId"`
}
