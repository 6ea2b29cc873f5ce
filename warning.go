package routedoc

import (
	"errors"
	"fmt"
)

// Warning is a non-fatal issue recorded while generating a document. The
// affected field or route was left out of the document.
type Warning struct {
	// Method and Path identify the route, Path as registered.
	Method string
	Path   string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %v", w.Method, w.Path, w.Err)
}

// Warnings is a collection of Warning with helper methods.
type Warnings []Warning

// Has reports whether any warning's error matches target.
func (ws Warnings) Has(target error) bool {
	for _, w := range ws {
		if errors.Is(w.Err, target) {
			return true
		}
	}
	return false
}
