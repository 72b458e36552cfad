package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"

	"github.com/google/uuid"
)

// V1SaveProjectRequest is the body request to create or update a project
type V1SaveProjectRequest struct {
	ProjectID       string     `json:"project_id,omitempty"`
	ProjectName     string     `json:"project_name"`
	UserHref        string     `json:"user_href"`
	StartTimestamp  *time.Time `json:"project_start_timestamp,omitempty"`
	EndTimestamp    *time.Time `json:"project_end_timestamp,omitempty"`
	AgreementStatus bool       `json:"agreement_status"`
	Price           string     `json:"price,omitempty"`
}

// SaveProjectV1 is the handler for create or update project v1
func (h *HandlerV1) SaveProjectV1(w http.ResponseWriter, r *http.Request) {

	var req V1SaveProjectRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding save project request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.ProjectName == "" || req.UserHref == "" {
		http.Error(w, "project_name and user_href required", http.StatusBadRequest)
		return
	}

	projectID := uuid.Nil
	if req.ProjectID != "" {
		projectID, err = uuid.Parse(req.ProjectID)
		if err != nil {
			http.Error(w, "invalid project_id", http.StatusBadRequest)
			return
		}
	}

	doc, saveErr := h.projectService.SaveOrUpdate(r.Context(), &domain.Project{
		ID:              projectID,
		Name:            req.ProjectName,
		OwnerRef:        req.UserHref,
		StartTimestamp:  req.StartTimestamp,
		EndTimestamp:    req.EndTimestamp,
		AgreementStatus: req.AgreementStatus,
		Price:           req.Price,
	})
	switch {
	case errors.Is(saveErr, domain.ErrInvalidArgument):
		h.logger.Error("invalid save project request", "error", saveErr)
		http.Error(w, saveErr.Error(), http.StatusBadRequest)
	case errors.Is(saveErr, domain.ErrAlreadyExists):
		h.logger.Error("project name already used", "error", saveErr)
		http.Error(w, "project name already used", http.StatusConflict)
	case saveErr != nil:
		h.logger.Error("error saving project", "error", saveErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(doc); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
