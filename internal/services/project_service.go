package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projectpulse/projectpulse-api/internal/analytics"
	"github.com/projectpulse/projectpulse-api/internal/models"
)

// ErrProjectNotFound is returned when a project lookup matches nothing.
var ErrProjectNotFound = errors.New("project not found")

// ProjectListResponse holds projects alongside their computed task stats,
// keyed by project ID hex.
type ProjectListResponse struct {
	Projects []models.Project                  `json:"projects"`
	Stats    map[string]analytics.ProjectStats `json:"stats"`
}

// ProjectDetailResponse is a single project with its computed task stats
type ProjectDetailResponse struct {
	Project models.Project         `json:"project"`
	Stats   analytics.ProjectStats `json:"stats"`
}

// ProjectService provides methods for project-related operations
type ProjectService struct {
	projectsCollection *mongo.Collection
	tasksCollection    *mongo.Collection
}

// NewProjectService creates a new ProjectService
func NewProjectService(db *mongo.Database) *ProjectService {
	return &ProjectService{
		projectsCollection: db.Collection("projects"),
		tasksCollection:    db.Collection("tasks"),
	}
}

// CreateProject creates a new project. The creator is automatically added to
// the assigned users and the start date is set to now.
func (s *ProjectService) CreateProject(req *models.CreateProjectRequest, createdBy string) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.ProjectActive
	}

	project := &models.Project{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		Description:   req.Description,
		Status:        status,
		CreatedBy:     createdBy,
		AssignedUsers: []string{createdBy},
		StartDate:     time.Now(),
		EndDate:       req.EndDate,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if _, err := s.projectsCollection.InsertOne(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects returns all projects sorted by creation date descending, each
// with its task aggregate computed from a single scan of the tasks collection.
func (s *ProjectService) ListProjects() (*ProjectListResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.projectsCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	taskCursor, err := s.tasksCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer taskCursor.Close(ctx)

	var tasks []models.Task
	if err = taskCursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	stats := make(map[string]analytics.ProjectStats, len(projects))
	for _, project := range projects {
		id := project.ID.Hex()
		var projectTasks []models.Task
		for _, t := range tasks {
			if t.ProjectID == id {
				projectTasks = append(projectTasks, t)
			}
		}
		stats[id] = analytics.StatsForTasks(projectTasks)
	}

	return &ProjectListResponse{Projects: projects, Stats: stats}, nil
}

// GetProjectByID retrieves a single project with its task aggregate
func (s *ProjectService) GetProjectByID(id string) (*ProjectDetailResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID format")
	}

	var project models.Project
	err = s.projectsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	cursor, err := s.tasksCollection.Find(ctx, bson.M{"project_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return &ProjectDetailResponse{
		Project: project,
		Stats:   analytics.StatsForTasks(tasks),
	}, nil
}

// UpdateProject applies a partial update to an existing project
func (s *ProjectService) UpdateProject(id string, update *models.UpdateProjectRequest) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID format")
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = models.ProjectStatus(*update.Status)
	}
	if update.AssignedUsers != nil {
		set["assigned_users"] = *update.AssignedUsers
	}
	if update.EndDate != nil {
		set["end_date"] = *update.EndDate
	}

	res, err := s.projectsCollection.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrProjectNotFound
	}

	var project models.Project
	if err := s.projectsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project by its ID. Tasks keep their project_id
// reference and are not cascaded.
func (s *ProjectService) DeleteProject(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid project ID format")
	}

	res, err := s.projectsCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ListAllProjects loads the entire projects collection for the analytics engine.
func (s *ProjectService) ListAllProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.projectsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
