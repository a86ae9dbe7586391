package catalog

import "errors"

// Sentinel errors for the catalog.
var (
	// ErrNilDescriptor is returned when a nil descriptor is registered.
	ErrNilDescriptor = errors.New("descriptor cannot be nil")

	// ErrEmptyName is returned when a descriptor has no full name.
	ErrEmptyName = errors.New("descriptor full name cannot be empty")

	// ErrInvalidManifest is returned when a manifest file is malformed.
	ErrInvalidManifest = errors.New("invalid manifest")
)
