package parsing

import "fmt"

// EmptyDocumentError indicates the input line sequence had no extractable text
// after normalization. This is the only failure mode of extraction; degraded
// results with empty fields are returned as success.
type EmptyDocumentError struct {
	Message string
}

func (e *EmptyDocumentError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("empty document: %s", e.Message)
	}
	return "empty document: no extractable text"
}
