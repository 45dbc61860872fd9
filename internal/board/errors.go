package board

import "errors"

// ErrConfig reports an impossible board or setup: non-positive dimensions or
// a start position outside the board.
var ErrConfig = errors.New("invalid board configuration")
