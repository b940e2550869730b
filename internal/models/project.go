package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// Project is a container of tasks with its own lifecycle status
type Project struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required,min=3"`
	Description   string             `bson:"description" json:"description"`
	Status        ProjectStatus      `bson:"status" json:"status" validate:"required,oneof=active completed on-hold"`
	CreatedBy     string             `bson:"created_by" json:"createdBy"` // uid of the creator
	AssignedUsers []string           `bson:"assigned_users" json:"assignedUsers"`
	StartDate     time.Time          `bson:"start_date" json:"startDate"`
	EndDate       *time.Time         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateProjectRequest is for creating a new project
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,min=3"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=active completed on-hold"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// UpdateProjectRequest is for partially updating an existing project
type UpdateProjectRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=3"`
	Description   *string    `json:"description,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=active completed on-hold"`
	AssignedUsers *[]string  `json:"assignedUsers,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}
