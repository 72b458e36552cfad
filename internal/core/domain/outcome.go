package domain

// AttachStatus is the outcome of a file attachment call. Lookup misses and
// duplicate base points are reported as data, not as errors, so callers can
// branch exhaustively without string matching.
type AttachStatus int

const (
	AttachCreated AttachStatus = iota
	AttachDuplicateBasePoint
	AttachProjectNotFound
)

// Message returns the caller-facing message for the outcome
func (s AttachStatus) Message() string {
	switch s {
	case AttachCreated:
		return "successfully created"
	case AttachDuplicateBasePoint:
		return "cannot duplicate base point id in a single project"
	case AttachProjectNotFound:
		return "project not exists"
	default:
		return "unknown"
	}
}

// AttachResult is the result of a file attachment call
type AttachResult struct {
	Status   AttachStatus
	FileInfo *FileInfo
}

// Name availability result codes, kept as a pair of distinct outcomes
const (
	CodeNameAvailable    = 2000
	CodeNameNotAvailable = 2001
)

// NameAvailability is the result of a project name availability check
type NameAvailability struct {
	Available   bool
	Code        int
	Description string
}

// NameAvailable builds the available outcome
func NameAvailable() *NameAvailability {
	return &NameAvailability{Available: true, Code: CodeNameAvailable, Description: "available"}
}

// NameNotAvailable builds the not-available outcome
func NameNotAvailable() *NameAvailability {
	return &NameAvailability{Available: false, Code: CodeNameNotAvailable, Description: "not available"}
}
