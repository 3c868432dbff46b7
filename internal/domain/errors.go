package domain

import "errors"

var (
	// Range errors
	ErrInvalidRange = errors.New("range start must not be after range end")

	// Configuration errors
	ErrInvalidRecurrence  = errors.New("recurrence interval must be at least 1")
	ErrUnknownPeriod      = errors.New("unknown recurrence period")
	ErrUnknownMergeMethod = errors.New("unknown merge method")

	// Obligation errors
	ErrObligationNotFound = errors.New("obligation not found")
	ErrMissingAccount     = errors.New("obligation requires a target account")
)
