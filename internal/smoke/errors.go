package smoke

import "errors"

// Sentinel errors returned by Run.
var (
	ErrUnhealthy    = errors.New("service unhealthy")
	ErrEmptyDataset = errors.New("service has no dataset loaded")
	ErrStatus       = errors.New("unexpected status")
	ErrInconsistent = errors.New("pages disagree")
)
