package node

import "errors"

// ErrNonLeafCopy indicates Copy was called on a node that still has
// children; only leaves can be snapshotted, since a scheme sweep only
// ever reads and copies the current leaf set.
var ErrNonLeafCopy = errors.New("node: cannot copy a non-leaf node")
