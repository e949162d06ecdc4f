package domain

import "errors"

var (
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrMissingFilename     = errors.New("uploaded file has no name")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNotAnImage          = errors.New("uploaded file is not an image")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyText           = errors.New("text to translate is empty")
	ErrUpstreamInvocation  = errors.New("model invocation failed")
)
