package project

import "errors"

var (
	ErrConfig  = errors.New("invalid configuration")
	ErrReadEnv = errors.New("failed to read env file")
)
