package domain

import "errors"

// ErrInvalidArgument is an error thrown when a required input is missing
var ErrInvalidArgument = errors.New("invalid argument")

// ErrProjectNotFound is an error thrown when a project is not found
var ErrProjectNotFound = errors.New("project not found")

// ErrDuplicateBasePoint is an error thrown when a base point id already exists within a project
var ErrDuplicateBasePoint = errors.New("duplicate base point id")

// ErrAlreadyExists is an error thrown when an entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrUploadFailed is an error thrown when uploading files to storage failed
var ErrUploadFailed = errors.New("upload failed")
