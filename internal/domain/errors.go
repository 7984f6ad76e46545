package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArtwork  = errors.New("invalid artwork")
	ErrInvalidComment  = errors.New("invalid comment")
	ErrUnknownStyle    = errors.New("unknown style")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrAnswerRequired  = errors.New("answer required")
	ErrAttemptFinished = errors.New("attempt finished")
	ErrAttemptBusy     = errors.New("attempt busy")
)
