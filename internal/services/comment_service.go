package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projectpulse/projectpulse-api/internal/models"
)

// CommentService provides methods for task comments
type CommentService struct {
	commentsCollection *mongo.Collection
}

// NewCommentService creates a new CommentService
func NewCommentService(db *mongo.Database) *CommentService {
	return &CommentService{
		commentsCollection: db.Collection("comments"),
	}
}

// CreateComment attaches a new comment to a task
func (s *CommentService) CreateComment(comment *models.Comment) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()

	if _, err := s.commentsCollection.InsertOne(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListCommentsByTask returns a task's comments oldest first
func (s *CommentService) ListCommentsByTask(taskID string) ([]models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.commentsCollection.Find(ctx, bson.M{"task_id": taskID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
