package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidPattern indicates the regex pattern failed to compile.
	// Batch-fatal: reported once, before any file is touched.
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrGroupIndexOutOfRange indicates a replacement template references
	// a structurally impossible capture group index (above MaxGroupIndex).
	// This is an authoring error and is batch-fatal.
	ErrGroupIndexOutOfRange = errors.New("capture group index out of range")

	// ErrNotText indicates a file's content is not valid text.
	// Per-file: the file is skipped and the reason recorded.
	ErrNotText = errors.New("file is not valid text")

	// ErrFileTooLarge indicates a file exceeds the configured size limit.
	// Per-file: the file is skipped and the reason recorded.
	ErrFileTooLarge = errors.New("file exceeds size limit")
)
