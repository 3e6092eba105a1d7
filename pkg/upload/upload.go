// Package upload validates and normalizes attachment payloads before they
// are written to object storage.
package upload

import "errors"

var (
	ErrEmptyFile           = errors.New("no file provided")
	ErrTooLarge            = errors.New("file exceeds the maximum allowed size")
	ErrNoExtension         = errors.New("file has no extension")
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrContentMismatch     = errors.New("file content does not match extension")
	ErrMIMENotAllowed      = errors.New("file type not allowed")
)
