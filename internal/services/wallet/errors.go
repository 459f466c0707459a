package wallet

import "errors"

// ErrCacheDisabled is returned by NoopCache so reads always fall through
// to the repository.
var ErrCacheDisabled = errors.New("wallet cache disabled")
