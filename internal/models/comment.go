package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a note attached to a task. The author's display name is
// denormalized onto the document so listings need no user lookup.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TaskID    string             `bson:"task_id" json:"taskId"`
	UserID    string             `bson:"user_id" json:"userId"` // uid of the author
	UserName  string             `bson:"user_name" json:"userName"`
	Content   string             `bson:"content" json:"content" validate:"required"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateCommentRequest is for adding a comment to a task
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
