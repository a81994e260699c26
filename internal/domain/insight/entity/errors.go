package entity

import "errors"

// Domain errors for insights
var (
	// Load errors
	ErrSourceNotFound   = errors.New("export source not found")
	ErrMalformedSource  = errors.New("export source is malformed")
	ErrDatasetNotLoaded = errors.New("dataset is not loaded yet")

	// Query errors
	ErrPostNotFound     = errors.New("post not found")
	ErrInvalidMetric    = errors.New("invalid metric")
	ErrInvalidMode      = errors.New("invalid period mode")
	ErrInvalidScope     = errors.New("invalid milestone scope")
	ErrInvalidDimension = errors.New("invalid breakdown dimension")
	ErrInvalidSortDir   = errors.New("sort direction must be asc or desc")
	ErrInvalidMilestone = errors.New("milestone must be formatted as YYYY-MM-DD")
)
