package layouts

import "fmt"

// UnknownLayoutError indicates a layout identifier outside the fixed catalog.
type UnknownLayoutError struct {
	ID string
}

func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("unknown layout: %q is not in the catalog", e.ID)
}
