package domain

import "time"

// ProjectDocument is the wire-facing representation of a project
type ProjectDocument struct {
	ProjectID       string             `json:"project_id"`
	ProjectName     string             `json:"project_name"`
	UserHref        string             `json:"user_href"`
	Status          string             `json:"status"`
	StartTimestamp  *time.Time         `json:"project_start_timestamp,omitempty"`
	EndTimestamp    *time.Time         `json:"project_end_timestamp,omitempty"`
	AgreementStatus bool               `json:"agreement_status"`
	Price           string             `json:"price,omitempty"`
	FileInfos       []FileInfoDocument `json:"project_file_info_documents"`
	CreatedAt       time.Time          `json:"created_timestamp"`
	// Fresh marks a freshly persisted view as opposed to a listing
	Fresh bool `json:"fresh"`
}

// FileInfoDocument is the wire-facing representation of a file info
type FileInfoDocument struct {
	FileInfoID     string   `json:"file_info_id"`
	BasePointID    string   `json:"base_point_id"`
	FileType       string   `json:"file_type"`
	StoredFileRefs []string `json:"stored_file_refs"`
}
