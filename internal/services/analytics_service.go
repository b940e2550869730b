package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projectpulse/projectpulse-api/internal/analytics"
)

// AnalyticsService loads full collection snapshots and hands them to the
// analytics engine. All derivation happens in memory in the engine; this
// service owns only the I/O boundary.
type AnalyticsService struct {
	taskService    *TaskService
	projectService *ProjectService
	userService    *UserService
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(db *mongo.Database) *AnalyticsService {
	return &AnalyticsService{
		taskService:    NewTaskService(db),
		projectService: NewProjectService(db),
		userService:    NewUserService(db),
	}
}

// GetOverview fetches fresh snapshots of every collection and computes the
// full analytics bundle. The caller supplies the clock so results are
// reproducible in tests.
func (s *AnalyticsService) GetOverview(windowDays int, now time.Time) (*analytics.Overview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tasks, err := s.taskService.ListAllTasks(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectService.ListAllProjects(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userService.ListAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	return analytics.BuildOverview(projects, tasks, users, windowDays, now), nil
}
