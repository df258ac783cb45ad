package importer

import "errors"

var (
	// ErrNoItems is returned when fetched feed has no recognizable product items.
	ErrNoItems = errors.New("no product items found in feed")

	errMissingSKU  = errors.New("missing sku")
	errMissingName = errors.New("missing name")
)
