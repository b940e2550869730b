package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projectpulse/projectpulse-api/internal/models"
)

// ErrTaskNotFound is returned when a task lookup matches nothing.
var ErrTaskNotFound = errors.New("task not found")

// TaskService provides methods for task-related operations
type TaskService struct {
	tasksCollection    *mongo.Collection
	commentsCollection *mongo.Collection
}

// NewTaskService creates a new TaskService
func NewTaskService(db *mongo.Database) *TaskService {
	return &TaskService{
		tasksCollection:    db.Collection("tasks"),
		commentsCollection: db.Collection("comments"),
	}
}

// CreateTask creates a new task
func (s *TaskService) CreateTask(task *models.Task) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	if _, err := s.tasksCollection.InsertOne(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTaskByID retrieves a task by its ID
func (s *TaskService) GetTaskByID(id string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid task ID format")
	}

	var task models.Task
	err = s.tasksCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// ListTasks retrieves a list of tasks with optional filtering, search, and pagination
func (s *TaskService) ListTasks(
	filter primitive.M,
	searchQuery string,
	page int64,
	limit int64,
) (*models.TaskListResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	// Case-insensitive regex search across title and description
	if searchQuery != "" {
		searchPattern := primitive.Regex{Pattern: searchQuery, Options: "i"}
		query["$or"] = []bson.M{
			{"title": searchPattern},
			{"description": searchPattern},
		}
	}

	skip := (page - 1) * limit
	if skip < 0 {
		skip = 0
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.tasksCollection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	totalCount, err := s.tasksCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}

// UpdateTask applies a partial update to an existing task and bumps updated_at
func (s *TaskService) UpdateTask(id string, update *models.UpdateTaskRequest) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid task ID format")
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = models.TaskStatus(*update.Status)
	}
	if update.Priority != nil {
		set["priority"] = models.TaskPriority(*update.Priority)
	}
	if update.AssignedTo != nil {
		set["assigned_to"] = *update.AssignedTo
	}
	if update.DueDate != nil {
		set["due_date"] = *update.DueDate
	}

	res, err := s.tasksCollection.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrTaskNotFound
	}

	return s.GetTaskByID(id)
}

// DeleteTask deletes a task and its comments
func (s *TaskService) DeleteTask(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid task ID format")
	}

	res, err := s.tasksCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTaskNotFound
	}

	// Comments hang off the task and go with it.
	if _, err := s.commentsCollection.DeleteMany(ctx, bson.M{"task_id": id}); err != nil {
		logrus.WithError(err).WithField("task_id", id).Warn("failed to delete task comments")
	}
	return nil
}

// ListAllTasks loads the entire tasks collection. The analytics engine
// aggregates in memory, so the whole table is delivered in one call.
func (s *TaskService) ListAllTasks(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.tasksCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
