package journal

import "errors"

var (
	// ErrEmptyTitle journal title is empty
	ErrEmptyTitle = errors.New("journal title is empty")

	// ErrNilJournal journal arg is nil
	ErrNilJournal = errors.New("journal is nil")

	// ErrEmptyFilename filename arg is empty
	ErrEmptyFilename = errors.New("filename is empty")
)
