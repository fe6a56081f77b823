package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

type Credentials struct {
	Password string `json:"password"`
}
