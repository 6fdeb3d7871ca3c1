package service

import "errors"

var (
	ErrEmptyFilename        = errors.New("empty filename")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileTooLarge         = errors.New("file too large")
)
