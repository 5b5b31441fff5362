package apperror

import "fmt"

// NotFoundError indicates that a requested record does not exist
// (or is not owned by the requesting user). Mapped to HTTP 404.
type NotFoundError struct {
	Resource string
	Id       uint
}

func (e *NotFoundError) Error() string {
	if e.Id > 0 {
		return fmt.Sprintf("%s %d not found", e.Resource, e.Id)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, Id: id}
}

// GenerationError indicates the external generative call failed, timed out,
// or returned output that could not be parsed. The flow never retries it;
// any turn persisted before the failure is kept.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGeneration(err error) error {
	return &GenerationError{Err: err}
}

// PersistenceError wraps a rejected read or write against the backing store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure on %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// ConversationBusyError signals that a conversation turn is already in
// flight for the diary. Mapped to HTTP 409.
type ConversationBusyError struct {
	DiaryId uint
}

func (e *ConversationBusyError) Error() string {
	return fmt.Sprintf("a conversation turn is already in progress for diary %d", e.DiaryId)
}

// ConflictError indicates a uniqueness violation, e.g. a second diary for
// the same (user, date). Mapped to HTTP 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) error {
	return &ConflictError{Message: message}
}
