package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	error
}

func (e *ResourceNotFoundError) Unwrap() error { return e.error }

func NewResourceNotFoundError(resource, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{fmt.Errorf("%s %q not found", resource, id)}
}

// NewNotFoundError wraps a not found message received from elsewhere, such
// as a remote server.
func NewNotFoundError(msg string) *ResourceNotFoundError {
	return &ResourceNotFoundError{errors.New(msg)}
}

func NewSettingsNotFoundError() *ResourceNotFoundError {
	return &ResourceNotFoundError{errors.New("settings not found")}
}

func NewNotesNotFoundError(avatar string) *ResourceNotFoundError {
	return NewResourceNotFoundError("notes for avatar", avatar)
}

func NewStatsNotFoundError(avatar string, ts int64) *ResourceNotFoundError {
	return &ResourceNotFoundError{fmt.Errorf("no stats found for %s at %d", avatar, ts)}
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

type InvalidArgumentError struct {
	error
}

func (e *InvalidArgumentError) Unwrap() error { return e.error }

func NewInvalidArgumentError(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{fmt.Errorf(format, args...)}
}

func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// LogFolderError is returned when the configured chat log folder cannot be read.
type LogFolderError struct {
	Folder string
	Err    error
}

func (e *LogFolderError) Error() string {
	return fmt.Sprintf("log folder %q: %v", e.Folder, e.Err)
}

func (e *LogFolderError) Unwrap() error { return e.Err }

func NewLogFolderError(folder string, err error) *LogFolderError {
	return &LogFolderError{Folder: folder, Err: err}
}

func IsLogFolderError(err error) bool {
	var e *LogFolderError
	return errors.As(err, &e)
}

type UnauthorizedError struct {
	error
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{fmt.Errorf("unauthorized: %s", reason)}
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}
