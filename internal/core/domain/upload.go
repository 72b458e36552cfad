package domain

// UploadFile is one staged file handed to the uploader
type UploadFile struct {
	Name        string
	ContentType string
	SizeBytes   int64
	StagedPath  string
}

// UploadResult is what the uploader reports after storing a batch of files
type UploadResult struct {
	// FileNames are the staged file names written locally, kept for cleanup
	FileNames []string
	// StoredFileRefs are the opaque object keys in the storage backend
	StoredFileRefs []string
}
