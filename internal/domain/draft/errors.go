package draft

import "errors"

// ErrUnknownTone indicates an unsupported tone name.
var ErrUnknownTone = errors.New("unknown tone")
