package export

import "errors"

// Sentinel error kinds for this package.
var (
	ErrWorkbook      = errors.New("workbook export failed")
	ErrDatabase      = errors.New("database export failed")
	ErrNoData        = errors.New("dataset unavailable")
	ErrUnknownFormat = errors.New("unknown export format")
)
