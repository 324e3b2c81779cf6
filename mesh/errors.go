package mesh

import "errors"

// ErrEmptyMesh is returned by any operation that requires a root when none
// has been installed yet.
var ErrEmptyMesh = errors.New("mesh: mesh is empty")

// ErrInvalidPowerOfTwo is returned by Uniform when n is not a power of two.
var ErrInvalidPowerOfTwo = errors.New("mesh: n must be power of 2")
