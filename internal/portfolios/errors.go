package portfolios

import "errors"

// ErrNotFound signals an absent portfolio, never a system failure.
var ErrNotFound = errors.New("portfolio not found")
