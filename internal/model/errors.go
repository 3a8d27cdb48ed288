package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already registered")

	// Submission errors
	ErrSubmissionNotFound = errors.New("submission not found")
)
