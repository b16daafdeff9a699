package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that no sync record exists for the id
	ErrRecordNotFound = errors.New("sync record not found")

	// ErrConfigNotFound indicates that no sync configuration was saved yet
	ErrConfigNotFound = errors.New("sync config not found")

	// ErrEntityNotFound indicates that the entity row does not exist
	ErrEntityNotFound = errors.New("entity not found")

	// ErrWorkspaceNotFound indicates that the workspace row does not exist
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
