package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projectpulse/projectpulse-api/internal/models"
)

const recentItemsLimit = 5

// DashboardService provides the headline counts for the dashboard landing
// page. Counting happens database-side; the derived analytics views are
// owned by the analytics service instead.
type DashboardService struct {
	projectsCollection *mongo.Collection
	tasksCollection    *mongo.Collection
	usersCollection    *mongo.Collection
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(db *mongo.Database) *DashboardService {
	return &DashboardService{
		projectsCollection: db.Collection("projects"),
		tasksCollection:    db.Collection("tasks"),
		usersCollection:    db.Collection("users"),
	}
}

// GetStats fetches total counts and the most recent projects and tasks
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stats := &models.DashboardStats{}

	var err error
	if stats.TotalProjects, err = s.projectsCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalTasks, err = s.tasksCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.CompletedTasks, err = s.tasksCollection.CountDocuments(ctx, bson.M{"status": models.StatusDone}); err != nil {
		return nil, err
	}
	if stats.InProgressTasks, err = s.tasksCollection.CountDocuments(ctx, bson.M{"status": models.StatusInProgress}); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.usersCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}

	recentOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(recentItemsLimit)

	projectCursor, err := s.projectsCollection.Find(ctx, bson.M{}, recentOptions)
	if err != nil {
		return nil, err
	}
	defer projectCursor.Close(ctx)
	stats.RecentProjects = []models.Project{}
	if err = projectCursor.All(ctx, &stats.RecentProjects); err != nil {
		return nil, err
	}

	taskCursor, err := s.tasksCollection.Find(ctx, bson.M{}, recentOptions)
	if err != nil {
		return nil, err
	}
	defer taskCursor.Close(ctx)
	stats.RecentTasks = []models.Task{}
	if err = taskCursor.All(ctx, &stats.RecentTasks); err != nil {
		return nil, err
	}

	return stats, nil
}
