package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus represents the workflow status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// Known reports whether the status is one of the three recognized values.
// Documents written by older clients may carry anything; unrecognized values
// are dropped from bucketed analytics but still count toward totals.
func (s TaskStatus) Known() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Known reports whether the priority is one of the three recognized values.
func (p TaskPriority) Known() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single unit of work inside a project
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required,min=3"`
	Description string             `bson:"description" json:"description"`
	Status      TaskStatus         `bson:"status" json:"status" validate:"required,oneof=todo in-progress done"`
	Priority    TaskPriority       `bson:"priority" json:"priority" validate:"required,oneof=low medium high"`
	ProjectID   string             `bson:"project_id" json:"projectId"`
	AssignedTo  string             `bson:"assigned_to" json:"assignedTo"` // uid of the assignee
	CreatedBy   string             `bson:"created_by" json:"createdBy"`   // uid of the creator
	DueDate     *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateTaskRequest is for creating a new task
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	ProjectID   string     `json:"projectId" validate:"required"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is for partially updating an existing task
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=todo in-progress done"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// TaskListResponse holds tasks and pagination metadata
type TaskListResponse struct {
	Tasks      []Task `json:"tasks"`
	TotalCount int64  `json:"totalCount"`
	Page       int64  `json:"page"`
	Limit      int64  `json:"limit"`
}
