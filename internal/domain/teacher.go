package domain

import "time"

const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type Teacher struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	PersonalCode  string    `json:"personal_code"`
	AssignedGroup string    `json:"assigned_group,omitempty"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
