package repository

import "errors"

var (
	// ErrUnknownTable indicates a write against a table outside the schema.
	ErrUnknownTable = errors.New("repository: unknown table")
	// ErrUnknownColumn indicates a column the table does not define.
	ErrUnknownColumn = errors.New("repository: unknown column")
	// ErrRowShape indicates a row whose width does not match its columns.
	ErrRowShape = errors.New("repository: row does not match columns")
	// ErrUnsupported indicates a query the backend cannot evaluate.
	ErrUnsupported = errors.New("repository: unsupported query")
)
