package vtkio

import "errors"

// ErrWrite is returned when the output directory or the VTK file itself
// could not be created or written.
var ErrWrite = errors.New("vtkio: failed to write output")
