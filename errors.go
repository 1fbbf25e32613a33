package tempuscache

import "errors"

// ErrInvalidConfig is returned by New when constructor options describe
// an impossible cache (e.g. a negative byte budget). It is the one place
// this package surfaces a Go error — every one of the four boolean
// operations (Get/Del/Exists/Expire) keeps a boolean-only failure
// contract; this is purely additive, at construction time only.
var ErrInvalidConfig = errors.New("tempuscache: invalid configuration")
