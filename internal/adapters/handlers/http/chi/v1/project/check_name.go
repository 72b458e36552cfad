package project

import (
	"encoding/json"
	"net/http"
)

// V1CheckNameResponse is the response of the project name availability check
type V1CheckNameResponse struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// CheckNameV1 is the handler for the project name availability check v1
func (h *HandlerV1) CheckNameV1(w http.ResponseWriter, r *http.Request) {

	name := r.URL.Query().Get("name")
	owner := r.URL.Query().Get("owner")

	if name == "" || owner == "" {
		http.Error(w, "name and owner required", http.StatusBadRequest)
		return
	}

	availability, err := h.projectService.CheckNameAvailability(r.Context(), name, owner)
	if err != nil {
		h.logger.Error("error checking project name", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1CheckNameResponse{
		Code:        availability.Code,
		Description: availability.Description,
		Available:   availability.Available,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
