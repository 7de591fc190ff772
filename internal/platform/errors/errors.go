package apperrors

import "errors"

var (
	// ErrConnectivity marks a dataset or prompt fetch that failed at the
	// transport level or returned a non-success status.
	ErrConnectivity = errors.New("could not reach the dataset")
	// ErrNoNewWork means the fetch worked but every remaining item has
	// already been submitted by this contributor.
	ErrNoNewWork = errors.New("no new work available")

	ErrEmptyInput       = errors.New("input is empty")
	ErrDuplicateEntry   = errors.New("duplicate of an existing record")
	ErrSentenceTooShort = errors.New("sentence is too short")

	ErrNothingToExport = errors.New("nothing to export")
	ErrSessionState    = errors.New("operation not valid in this session state")
)
