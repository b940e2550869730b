package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/projectpulse/projectpulse-api/internal/models"
	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// UserHandler handles user related HTTP requests
type UserHandler struct {
	userService *services.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{
		userService: us,
		validator:   validator.New(),
	}
}

// ListUsers handles listing all users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.userService.ListUsers()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetUserByUID handles retrieving a single user by uid
func (h *UserHandler) GetUserByUID(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	user, err := h.userService.GetUserByUID(uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateUserRole handles changing a user's role (admin only, enforced by middleware)
func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	var req models.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateUserRole(uid, models.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user role")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}
