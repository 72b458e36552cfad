package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusCreated   ProjectStatus = "CREATED"
	ProjectStatusSubmitted ProjectStatus = "SUBMITTED"
	ProjectStatusError     ProjectStatus = "ERROR"
)

// FileType represents the category of files attached to a project
type FileType string

const (
	FileTypeRinex       FileType = "rinex"
	FileTypeObservation FileType = "observation"
	FileTypeReport      FileType = "report"
	FileTypeUnknown     FileType = "unknown"
)

// ParseFileType maps a raw tag to a FileType, falling back to FileTypeUnknown
func ParseFileType(raw string) FileType {
	switch FileType(raw) {
	case FileTypeRinex, FileTypeObservation, FileTypeReport:
		return FileType(raw)
	default:
		return FileTypeUnknown
	}
}

// Project is the aggregate root for a portal project
type Project struct {
	ID              uuid.UUID
	Name            string
	OwnerRef        string
	Status          ProjectStatus
	StartTimestamp  *time.Time
	EndTimestamp    *time.Time
	AgreementStatus bool
	Price           string
	FileInfos       []FileInfo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasBasePoint reports whether a file info with the given base point id
// is already attached to the project
func (p *Project) HasBasePoint(basePointID string) bool {
	for _, info := range p.FileInfos {
		if info.BasePointID == basePointID {
			return true
		}
	}
	return false
}

// FileInfo describes one batch of uploaded files attached to a project.
// Base point ids are unique within a single project.
type FileInfo struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	BasePointID    string
	FileType       FileType
	StoredFileRefs []string
	CreatedAt      time.Time
}

// FileInfoRequest carries the caller-supplied attributes of a new file info
type FileInfoRequest struct {
	BasePointID string
}
