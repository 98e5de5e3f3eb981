package board

import "errors"

// ErrNotFound indicates a selection of a pictogram that is not on the
// current screen.
var ErrNotFound = errors.New("board: pictogram not found")
