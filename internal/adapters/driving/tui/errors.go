package tui

import "errors"

// ErrMissingBillService is returned when the bill service is not provided.
var ErrMissingBillService = errors.New("tui: bill service is required")
