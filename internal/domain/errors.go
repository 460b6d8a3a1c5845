package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Persistence errors
	ErrMsgIntegrity = "integrity check failed"
	ErrMsgIO        = "storage i/o failed"

	// Inventory errors
	ErrMsgNotFound = "item not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Catalog errors
	ErrMsgMalformedCatalogEntry = "malformed catalog entry"
	ErrMsgEmptyCase             = "case has no items"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrIntegrity = errors.New(ErrMsgIntegrity)
	ErrIO        = errors.New(ErrMsgIO)

	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrMalformedCatalogEntry = errors.New(ErrMsgMalformedCatalogEntry)
	ErrEmptyCase             = errors.New(ErrMsgEmptyCase)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
