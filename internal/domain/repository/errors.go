// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"github.com/pkg/errors"
)

// Domain-specific errors shared by all repositories.
var (
	// ErrStorageUnavailable is returned when the database cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrDuplicateEvent is returned when an insert violates an event identity index.
	ErrDuplicateEvent = errors.New("event already exists")
	// ErrRecipientNotFound is returned when a recipient is not found.
	ErrRecipientNotFound = errors.New("recipient not found")
)
