// Package common defines sentinel errors and constants shared by the FoodHub
// client and the dev backend. Callers should use errors.Is to match them.
package common

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrAlreadyExists is returned when creating something that is already there.
	ErrAlreadyExists = errors.New("already exists")
)
