package service

import "errors"

// Sentinel errors returned by the page operations.
var (
	ErrNotStarted      = errors.New("service not started")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
