package config

import "errors"

var (
	// ErrInvalidConfig is wrapped by every Validate failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig wraps failures reading the YAML file, the .env file or the environment.
	ErrLoadConfig = errors.New("load config failed")
)
