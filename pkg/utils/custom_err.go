package utils

import "errors"

var (
	ErrLastDay            = errors.New("itinerary must keep at least one day")
	ErrReorderMismatch    = errors.New("reorder ids contradict day membership")
	ErrDayNotFound        = errors.New("day not found")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorage            = errors.New("storage rejected the write")
	ErrDatabaseError      = errors.New("database error")
)
