package domain

// CompletionEvent is the message published by the processing pipeline once it
// finishes working on a project
type CompletionEvent struct {
	ProjectID string `json:"project_id"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
}
