package detection

import "fmt"

// NoComponentsFoundError reports that labeling or filtering produced no
// usable region. It is fatal for the image being processed: callers must
// not substitute an empty result set, but may retry with an adjusted
// threshold bias, padding, or smaller minimum area.
type NoComponentsFoundError struct {
	// Stage names the operation that came up empty, e.g. "split filter"
	// or "island cleanup".
	Stage string

	// MinArea is the area floor in effect, in pixels of the mask's
	// coordinate space. Zero when no floor was applied.
	MinArea int
}

func (e *NoComponentsFoundError) Error() string {
	if e.MinArea > 0 {
		return fmt.Sprintf("%s: no components found with area >= %d px", e.Stage, e.MinArea)
	}
	return fmt.Sprintf("%s: no components found", e.Stage)
}
