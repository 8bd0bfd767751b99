package model

import "errors"

var (
	// ErrMalformedName is returned when a record name carries no numeric suffix.
	ErrMalformedName = errors.New("malformed record name")
	// ErrUnmappedLabel is returned in strict mode for a category missing from the label map.
	ErrUnmappedLabel = errors.New("unmapped category label")
)
