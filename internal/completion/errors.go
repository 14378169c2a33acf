package completion

import "errors"

// ErrNoCompletionSource means there is neither an enabled provider nor a
// fallback template, so no reply could ever be produced.
var ErrNoCompletionSource = errors.New("no enabled provider and no fallback replies configured")
