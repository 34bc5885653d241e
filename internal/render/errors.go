package render

import "fmt"

// UnsupportedFormatError indicates an output format other than pdf or docx.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q, expected pdf or docx", e.Format)
}

// RenderError indicates the backend could not produce bytes for a
// structurally valid resume. Fatal for the request, never retried.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
