package core

import (
	"errors"
)

var (
	ErrOutOfRange     = errors.New("position out of range")
	ErrNotFound       = errors.New("file not found")
	ErrIOFailure      = errors.New("i/o failure")
	ErrInvalidChar    = errors.New("invalid character")
	ErrNoFile         = errors.New("no file name")
	ErrClipboardWrite = errors.New("cannot write to clipboard")
	ErrStartOfBuffer  = errors.New("start of buffer")
	ErrEndOfBuffer    = errors.New("end of buffer")
	ErrStartOfLine    = errors.New("start of line")
	ErrEndOfLine      = errors.New("end of line")
)

type ErrorId int

const (
	ErrOutOfRangeId ErrorId = iota
	ErrInvalidCharId
	ErrFailedToSaveId
	ErrCopyFailedId
)

// Error pairs an error with the id the shell uses to decide how to present it.
type Error struct {
	id  ErrorId
	err error
}

func newError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) ID() ErrorId { return e.id }

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }
