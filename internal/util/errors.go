package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrStudentNotFound    = errors.New("student not found")
	ErrUnknownTrack       = errors.New("unknown track")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
