package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Upload limits
const maxUploadBytes = 50 * 1024 * 1024

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
	"application/pdf": {},
}

// UploadRequest represents the JSON body for a base64 file upload
// swagger:model UploadRequest
type UploadRequest struct {
	// Base64 file payload, optionally with a data: prefix
	// required: true
	File string `json:"file"`

	// Original file name, used for the extension only
	FileName string `json:"fileName"`

	// MIME type
	FileType string `json:"fileType"`
}

// UploadResponse describes the stored file
// swagger:model UploadResponse
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int    `json:"fileSize"`
}

// NewUploadHandler returns the HTTP handler for base64 file uploads. Files
// get a uuid-based name under the given CDN prefix.
// @Summary File upload
// @Description Accepts a base64 payload for images, videos and PDF documents up to 50MB.
// @Tags upload
// @Accept json
// @Produce json
// @Success 200 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "File data is required"
// @Router /upload [post]
func NewUploadHandler(cdnBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req UploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "File data is required")
			return
		}
		if req.File == "" {
			writeError(w, http.StatusBadRequest, "File data is required")
			return
		}

		fileType := req.FileType
		if fileType == "" {
			fileType = "image/jpeg"
		}
		if _, ok := allowedUploadTypes[fileType]; !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("File type %s not allowed", fileType))
			return
		}

		payload := req.File
		if strings.HasPrefix(payload, "data:") {
			if _, rest, found := strings.Cut(payload, ","); found {
				payload = rest
			}
		}

		fileBytes, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Upload failed: %s", err.Error()))
			return
		}
		if len(fileBytes) > maxUploadBytes {
			writeError(w, http.StatusBadRequest, "File size exceeds 50MB limit")
			return
		}

		extension := "jpg"
		if idx := strings.LastIndex(req.FileName, "."); idx >= 0 && idx < len(req.FileName)-1 {
			extension = req.FileName[idx+1:]
		}
		uniqueName := fmt.Sprintf("%s.%s", uuid.NewString(), extension)

		writeJSON(w, http.StatusOK, UploadResponse{
			URL:      fmt.Sprintf("%s/%s", strings.TrimSuffix(cdnBaseURL, "/"), uniqueName),
			FileName: uniqueName,
			FileType: fileType,
			FileSize: len(fileBytes),
		})
	}
}
