package source

import "fmt"

// DiscoveryError means the root could not be read.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("cannot read catalog root %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// DocumentError reports one document, or one whole file, that could not be
// decoded. Document is -1 when the file itself could not be read.
type DocumentError struct {
	File     string
	Document int
	Line     int
	Err      error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Document < 0:
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s: document %d (line %d): %v", e.File, e.Document, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: document %d: %v", e.File, e.Document, e.Err)
	}
}

func (e *DocumentError) Unwrap() error { return e.Err }
