package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole is the role assigned to a user account
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents a user in the system. The uid is the stable public
// identifier referenced by tasks and comments; the Mongo _id stays internal.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UID       string             `bson:"uid" json:"uid"`
	Name      string             `bson:"name" json:"name" validate:"required,min=2,max=50"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"-"` // Exclude from JSON output
	Role      UserRole           `bson:"role" json:"role" validate:"required,oneof=admin user"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// RegisterRequest is used for registration requests
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is used for login requests
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the response body for a successful login
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	UID     string   `json:"uid"`
	Name    string   `json:"name"`
	Role    UserRole `json:"role"`
}

// UpdateUserRoleRequest for changing user roles
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// ForgotPasswordRequest for initiating password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest for completing password reset
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UserListResponse holds a list of users and pagination metadata
type UserListResponse struct {
	Users      []User `json:"users"`
	TotalCount int64  `json:"totalCount"`
}

// AuthContext holds authenticated user details to be stored in request context
type AuthContext struct {
	UserID      primitive.ObjectID
	UID         string
	Name        string
	Role        UserRole
	Permissions []Permission
}

// HasPermission checks if the AuthContext has a specific permission
func (ac *AuthContext) HasPermission(permission string) bool {
	for _, p := range ac.Permissions {
		if p.Action == permission {
			return true
		}
	}
	return false
}
