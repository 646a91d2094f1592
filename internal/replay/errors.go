package replay

import "errors"

// ErrNotSorted is returned by Verify when a listing leaves the machine unsorted.
var ErrNotSorted = errors.New("operations do not sort the input")
