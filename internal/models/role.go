package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Permission represents a specific action a user can perform
type Permission struct {
	Action string `bson:"action" json:"action"` // e.g., "task:create", "analytics:read"
}

// Role represents a user role with a set of permissions
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        UserRole           `bson:"name" json:"name" validate:"required"`
	Permissions []Permission       `bson:"permissions" json:"permissions"`
}

// Define the default roles and their permissions (for seeding)
var DefaultRoles = []Role{
	{
		Name: RoleAdmin,
		Permissions: []Permission{
			{Action: "task:create"}, {Action: "task:read"}, {Action: "task:update"}, {Action: "task:delete"},
			{Action: "project:create"}, {Action: "project:read"}, {Action: "project:update"}, {Action: "project:delete"},
			{Action: "comment:create"}, {Action: "comment:read"},
			{Action: "user:read"}, {Action: "user:update_role"},
			{Action: "dashboard:read"}, {Action: "analytics:read"},
			{Action: "upload:create"},
		},
	},
	{
		Name: RoleUser,
		Permissions: []Permission{
			{Action: "task:create"}, {Action: "task:read"}, {Action: "task:update"}, {Action: "task:delete"},
			{Action: "project:create"}, {Action: "project:read"}, {Action: "project:update"},
			{Action: "comment:create"}, {Action: "comment:read"},
			{Action: "user:read"},
			{Action: "dashboard:read"}, {Action: "analytics:read"},
			{Action: "upload:create"},
		},
	},
}
