package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNPCNotFound   = "npc not found"
	ErrMsgCropNotFound  = "crop not found"
	ErrMsgDecodeFailed  = "stored data could not be decoded"
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgDatabaseError = "database error"
	ErrMsgDuplicateID   = "duplicate id"
	ErrMsgStoreReadOnly = "catalog store is read-only"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrNPCNotFound  = errors.New(ErrMsgNPCNotFound)
	ErrCropNotFound = errors.New(ErrMsgCropNotFound)

	// ErrDecode means a structured field at rest (ingredients, sections, ...) was not valid.
	// It fails the single call that hit it, never the process.
	ErrDecode = errors.New(ErrMsgDecodeFailed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Seeding errors
	ErrDuplicateID   = errors.New(ErrMsgDuplicateID)
	ErrStoreReadOnly = errors.New(ErrMsgStoreReadOnly)
)
