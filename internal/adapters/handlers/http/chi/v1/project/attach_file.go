package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/converter"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1AttachFileResponse is the response of the file attachment call
type V1AttachFileResponse struct {
	Message  string                   `json:"message"`
	FileInfo *domain.FileInfoDocument `json:"file_info,omitempty"`
}

// AttachFileV1 is the handler for attaching uploaded files to a project v1.
// Files arrive as multipart form data, are staged on local disk and handed to
// the project service as a single batch.
func (h *HandlerV1) AttachFileV1(w http.ResponseWriter, r *http.Request) {

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.uploadCfg.MaxFileSize); err != nil {
		h.logger.Error("error parsing multipart form", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	basePointID := r.FormValue("base_point_id")
	if basePointID == "" {
		http.Error(w, "base_point_id required", http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		http.Error(w, "provide at least one file", http.StatusBadRequest)
		return
	}

	for _, fh := range fileHeaders {
		if fh.Size > h.uploadCfg.MaxFileSize {
			http.Error(w, fmt.Sprintf("file %s exceeds the size limit", fh.Filename), http.StatusBadRequest)
			return
		}
	}

	if err := os.MkdirAll(h.uploadCfg.StagingDir, 0o755); err != nil {
		h.logger.Error("error creating staging dir", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	files := make([]domain.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		stagedPath, stageErr := h.stageFile(fh)
		if stageErr != nil {
			h.logger.Error("error staging uploaded file", "file", fh.Filename, "error", stageErr)
			http.Error(w, "internal server error", http.StatusServiceUnavailable)
			return
		}
		files = append(files, domain.UploadFile{
			Name:        filepath.Base(fh.Filename),
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   fh.Size,
			StagedPath:  stagedPath,
		})
	}

	request := domain.FileInfoRequest{BasePointID: basePointID}
	fileType := domain.ParseFileType(r.FormValue("file_type"))

	result, attachErr := h.projectService.AttachFile(r.Context(), r.FormValue("dir"), projectID, request, fileType, files)
	switch {
	case errors.Is(attachErr, domain.ErrInvalidArgument):
		h.logger.Error("invalid attach file request", "error", attachErr)
		http.Error(w, attachErr.Error(), http.StatusBadRequest)
		return
	case attachErr != nil:
		h.logger.Error("error attaching files", "error", attachErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1AttachFileResponse{Message: result.Status.Message()}

	var status int
	switch result.Status {
	case domain.AttachCreated:
		status = http.StatusCreated
		doc := converter.ToFileInfoDocument(*result.FileInfo)
		resp.FileInfo = &doc
	case domain.AttachDuplicateBasePoint:
		status = http.StatusConflict
	case domain.AttachProjectNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) stageFile(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	stagedPath := filepath.Join(h.uploadCfg.StagingDir, filepath.Base(fh.Filename))
	dst, err := os.Create(stagedPath)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	return stagedPath, nil
}
