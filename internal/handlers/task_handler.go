package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/projectpulse/projectpulse-api/internal/middleware"
	"github.com/projectpulse/projectpulse-api/internal/models"
	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// TaskHandler handles task related HTTP requests
type TaskHandler struct {
	taskService *services.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(ts *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: ts,
		validator:   validator.New(),
	}
}

// CreateTask handles creating a new task
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	authContext, err := middleware.GetAuthContext(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if req.Status == "" {
		req.Status = string(models.StatusTodo)
	}
	if req.Priority == "" {
		req.Priority = string(models.PriorityMedium)
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   authContext.UID,
		DueDate:     req.DueDate,
	}

	createdTask, err := h.taskService.CreateTask(task)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, createdTask)
}

// GetTasks handles listing tasks with search, filter, and pagination
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	filter := primitive.M{}

	if statusFilter := r.URL.Query().Get("status"); statusFilter != "" {
		status := models.TaskStatus(strings.ToLower(statusFilter))
		if !status.Known() {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid status filter. Must be 'todo', 'in-progress', or 'done'.")
			return
		}
		filter["status"] = status
	}

	if priorityFilter := r.URL.Query().Get("priority"); priorityFilter != "" {
		priority := models.TaskPriority(strings.ToLower(priorityFilter))
		if !priority.Known() {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid priority filter. Must be 'low', 'medium', or 'high'.")
			return
		}
		filter["priority"] = priority
	}

	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		filter["project_id"] = projectID
	}

	if assignedTo := r.URL.Query().Get("assignedTo"); assignedTo != "" {
		filter["assigned_to"] = assignedTo
	}

	searchQuery := r.URL.Query().Get("search")

	tasksResponse, err := h.taskService.ListTasks(filter, searchQuery, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tasksResponse)
}

// GetTaskByID handles retrieving a single task by ID
func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	task, err := h.taskService.GetTaskByID(taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, task)
}

// UpdateTask handles partially updating an existing task
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updatedTask, err := h.taskService.UpdateTask(taskID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updatedTask)
}

// DeleteTask handles deleting a task and its comments
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	if err := h.taskService.DeleteTask(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
