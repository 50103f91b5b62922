package workspace

import "errors"

var (
	ErrUnsafePath = errors.New("artifact path outside workspace")
	ErrRemove     = errors.New("failed to remove artifact")
)
