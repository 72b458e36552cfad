package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1CompleteProjectRequest is the body request to record a processing outcome
type V1CompleteProjectRequest struct {
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
}

// V1CompleteProjectResponse is the response to record a processing outcome
type V1CompleteProjectResponse struct {
	Updated bool `json:"updated"`
}

// CompleteProjectV1 is the handler for recording a processing outcome v1
func (h *HandlerV1) CompleteProjectV1(w http.ResponseWriter, r *http.Request) {

	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var req V1CompleteProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding complete project request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	updated, completeErr := h.projectService.CompleteProject(r.Context(), projectID, req.Outcome)
	switch {
	case errors.Is(completeErr, domain.ErrInvalidArgument):
		h.logger.Error("invalid complete project request", "error", completeErr)
		http.Error(w, completeErr.Error(), http.StatusBadRequest)
	case completeErr != nil:
		h.logger.Error("error completing project", "error", completeErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	case !updated:
		http.Error(w, "project not exists", http.StatusNotFound)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(V1CompleteProjectResponse{Updated: true}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
