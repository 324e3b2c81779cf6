package lineout

import "errors"

// ErrParse is returned when a VTK file cannot be parsed into points, cells,
// and cell-data values.
var ErrParse = errors.New("lineout: failed to parse VTK file")
