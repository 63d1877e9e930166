package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Content errors
	ErrBlockNotFound    = errors.New("content block not found")
	ErrRevisionNotFound = errors.New("content revision not found")
	ErrConflict         = errors.New("concurrent update conflict")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberExists       = errors.New("member already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
