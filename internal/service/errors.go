package service

import "errors"

var (
	// ErrNotOwned covers both a store that does not exist and a store owned
	// by another user; callers cannot tell the two apart.
	ErrNotOwned = errors.New("store not found or not owned by caller")

	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("record not found")
	ErrInUse     = errors.New("record is referenced by other records, remove dependents first")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
