package types

import "errors"

// Store defines the interface for backend-agnostic contact persistence.
// Callers attach to a backend, load and save the book, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load hydrates the full contact book from persisted state.
	// A missing or unreadable snapshot yields an empty book, not an error.
	Load() (*Book, error)

	// Save persists the full contact book, replacing prior state.
	// Contacts without a ContactID are assigned one.
	Save(book *Book) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
