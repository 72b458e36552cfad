package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/converter"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// GetByNameV1 is the handler for fetching a project by name v1
func (h *HandlerV1) GetByNameV1(w http.ResponseWriter, r *http.Request) {

	name := chi.URLParam(r, "projectName")
	if name == "" {
		http.Error(w, "project name required", http.StatusBadRequest)
		return
	}

	proj, err := h.projectService.GetByName(r.Context(), name)
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		http.Error(w, "project not exists", http.StatusNotFound)
	case err != nil:
		h.logger.Error("error fetching project by name", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(converter.ToDocument(proj, false)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
