package ingestion

import "fmt"

// UnsupportedFormatError indicates the uploaded blob is neither a PDF nor a
// Word document, or its format could not be determined.
type UnsupportedFormatError struct {
	Message string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Message)
}

// CorruptDocumentError indicates the backend parser could not open the blob at
// all (truncated file, invalid internal structure).
type CorruptDocumentError struct {
	Message string
	Cause   error
}

func (e *CorruptDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("corrupt document: %s", e.Message)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Cause
}
