package process

import "errors"

var (
	ErrProcess      = errors.New("process error")
	ErrEmptyCommand = errors.New("empty command")
)
