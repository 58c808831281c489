package job

import "errors"

var (
	// ErrMalformedRecord marks an upstream record missing a structurally required field
	ErrMalformedRecord = errors.New("malformed raw record")

	// ErrInvalidDocument marks a regional dataset document that cannot be decoded
	ErrInvalidDocument = errors.New("invalid dataset document")

	// ErrCatalogUnavailable wraps any failure to load a region's catalog; the load is retried on next access
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnknownRegion is returned for a region outside domain.Regions
	ErrUnknownRegion = errors.New("unknown region")

	// ErrJobNotFound is returned when an ID is not present in the region's catalog
	ErrJobNotFound = errors.New("job not found")
)
