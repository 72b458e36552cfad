package project

import (
	"encoding/json"
	"net/http"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/converter"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// ListProjectsV1 is the handler for listing projects v1, optionally filtered
// by owner
func (h *HandlerV1) ListProjectsV1(w http.ResponseWriter, r *http.Request) {

	owner := r.URL.Query().Get("owner")

	var (
		projects []domain.Project
		err      error
	)
	if owner != "" {
		projects, err = h.projectService.ListByOwner(r.Context(), owner)
	} else {
		projects, err = h.projectService.List(r.Context())
	}
	if err != nil {
		h.logger.Error("error listing projects", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	docs := make([]*domain.ProjectDocument, 0, len(projects))
	for i := range projects {
		docs = append(docs, converter.ToDocument(&projects[i], false))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(docs); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
