package medals

import "errors"

// ErrUnknownUnit is returned by ParseUnit for anything but region or noc.
var ErrUnknownUnit = errors.New("unknown dedupe unit")
