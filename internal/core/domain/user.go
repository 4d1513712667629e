package domain

import "time"

const (
	RoleAdmin          = "admin"
	RoleDirector       = "director"
	RoleDepartmentHead = "department_head"
	RoleEmployee       = "employee"
)

type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type Credentials struct {
	Email    string
	Password string
}

type UpdateUserInput struct {
	Username string
	Email    string
}
