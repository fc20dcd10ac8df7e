package domain

import "errors"

var (
	ErrEmptySelection   = errors.New("no files selected")
	ErrEmptyDestination = errors.New("destination path is empty")
	ErrInvalidEndpoint  = errors.New("invalid endpoint")
	ErrPromptCancelled  = errors.New("prompt cancelled")
	ErrNotRegularFile   = errors.New("not a regular file")
)
