package feed

import "errors"

// ErrMalformedFeed is returned when feed file isn't a readable xml document.
var ErrMalformedFeed = errors.New("malformed feed file")
