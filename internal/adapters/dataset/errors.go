package dataset

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingFile   = errors.New("input file missing")
	ErrMissingColumn = errors.New("required column missing")
	ErrEmptyFile     = errors.New("input file has no header")
	ErrNoHDIYears    = errors.New("hdi table has no year columns")
)
