package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/projectpulse/projectpulse-api/internal/middleware"
	"github.com/projectpulse/projectpulse-api/internal/models"
	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// CommentHandler handles comment related HTTP requests, nested under tasks
type CommentHandler struct {
	commentService *services.CommentService
	taskService    *services.TaskService
	validator      *validator.Validate
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(cs *services.CommentService, ts *services.TaskService) *CommentHandler {
	return &CommentHandler{
		commentService: cs,
		taskService:    ts,
		validator:      validator.New(),
	}
}

// CreateComment handles adding a comment to a task
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	var req models.CreateCommentRequest
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

	// The task must exist before anything can hang off it.
	if _, err := h.taskService.GetTaskByID(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	comment := &models.Comment{
		TaskID:   taskID,
		UserID:   authContext.UID,
		UserName: authContext.Name,
		Content:  req.Content,
	}

	createdComment, err := h.commentService.CreateComment(comment)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, createdComment)
}

// GetComments handles listing a task's comments oldest first
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	comments, err := h.commentService.ListCommentsByTask(taskID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, comments)
}
