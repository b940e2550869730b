package handlers

import (
	"fmt"
	"net/http"

	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// UploadHandler handles file upload related HTTP requests
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(us *services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: us,
	}
}

// UploadFile handles avatar and attachment uploads
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	// Max 10MB file size
	r.ParseMultipartForm(10 << 20)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Error retrieving file from form: %v", err))
		return
	}
	defer file.Close()

	if fileHeader.Size == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Uploaded file is empty")
		return
	}

	url, err := h.uploadService.UploadFile(r.Context(), fileHeader)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "File uploaded successfully", "url": url})
}
