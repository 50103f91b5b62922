package build

import "errors"

var (
	ErrPrerequisiteMissing = errors.New("prerequisite missing")
	ErrCleanup             = errors.New("workspace cleanup failed")
	ErrInvocation          = errors.New("packager failed")
)
