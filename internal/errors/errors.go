// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrorTypeRead   ErrorType = "READ"
	ErrorTypeDecode ErrorType = "DECODE"
	ErrorTypeBackup ErrorType = "BACKUP"
	ErrorTypeWrite  ErrorType = "WRITE"
)

// Error is a failure confined to a single file. The batch records it and
// moves on to the next file.
type Error struct {
	Type    ErrorType
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ReadError(path string, err error) *Error {
	return &Error{
		Type:    ErrorTypeRead,
		Path:    path,
		Message: "reading file",
		Err:     err,
	}
}

func DecodeError(path string) *Error {
	return &Error{
		Type:    ErrorTypeDecode,
		Path:    path,
		Message: "decoding file: content is not valid UTF-8",
	}
}

func BackupError(path string, err error) *Error {
	return &Error{
		Type:    ErrorTypeBackup,
		Path:    path,
		Message: "writing backup",
		Err:     err,
	}
}

func WriteError(path string, err error) *Error {
	return &Error{
		Type:    ErrorTypeWrite,
		Path:    path,
		Message: "writing file",
		Err:     err,
	}
}

// TypeOf returns the ErrorType carried anywhere in err's chain, or "" if
// err is not a per-file error.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}
