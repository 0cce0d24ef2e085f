package extract

import "fmt"

// memoryPath is the Path reported by OpenError for documents read from memory.
const memoryPath = "<memory>"

// OpenError is returned when a document cannot be opened: the file is missing,
// unreadable, or does not parse as a PDF.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// PageError is returned when the content of a single page cannot be decoded.
// Page is 1-based.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("extract page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }
