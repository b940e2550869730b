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

// ProjectHandler handles project related HTTP requests
type ProjectHandler struct {
	projectService *services.ProjectService
	validator      *validator.Validate
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: ps,
		validator:      validator.New(),
	}
}

// CreateProject handles creating a new project
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
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

	project, err := h.projectService.CreateProject(&req, authContext.UID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, project)
}

// GetProjects handles listing all projects with their task stats
func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	resp, err := h.projectService.ListProjects()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetProjectByID handles retrieving a single project with its task stats
func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	resp, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve project")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateProject handles partially updating an existing project
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(projectID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, project)
}

// DeleteProject handles deleting a project
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]

	if err := h.projectService.DeleteProject(projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
