// Package genregion locates and replaces the marker-delimited generated
// region of an artifact file.
//
// A region is bounded by two marker lines whose trimmed content must match the
// configured markers exactly. Splicing reconstructs the file as everything up
// to and including the begin marker, the fresh block, then everything from the
// end marker onward, so hand-maintained content and the markers themselves are
// never disturbed.
package genregion

import (
	"errors"
	"fmt"
	"strings"
)

// Markers holds the literal begin and end marker lines for a generated region.
type Markers struct {
	Begin string
	End   string
}

// NotFoundError reports that a marker line is missing from the file text.
type NotFoundError struct {
	Marker string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("generated-region marker %q not found", e.Marker)
}

// IsNotFound reports whether err stems from a missing region marker.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Splice replaces the lines strictly between the markers with block. The
// returned text is byte-identical to existing outside the replaced range. The
// end marker is only accepted strictly after the begin marker; a marker that
// cannot be located yields a NotFoundError.
func Splice(existing string, m Markers, block []string) (string, error) {
	lines := strings.Split(existing, "\n")

	begin := indexOfMarker(lines, 0, m.Begin)
	if begin < 0 {
		return "", &NotFoundError{Marker: m.Begin}
	}
	end := indexOfMarker(lines, begin+1, m.End)
	if end < 0 {
		return "", &NotFoundError{Marker: m.End}
	}

	out := make([]string, 0, begin+1+len(block)+len(lines)-end)
	out = append(out, lines[:begin+1]...)
	out = append(out, block...)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n"), nil
}

// Extract returns the lines strictly between the markers, for callers that
// inspect the current generated block.
func Extract(existing string, m Markers) ([]string, error) {
	lines := strings.Split(existing, "\n")

	begin := indexOfMarker(lines, 0, m.Begin)
	if begin < 0 {
		return nil, &NotFoundError{Marker: m.Begin}
	}
	end := indexOfMarker(lines, begin+1, m.End)
	if end < 0 {
		return nil, &NotFoundError{Marker: m.End}
	}

	region := make([]string, end-begin-1)
	copy(region, lines[begin+1:end])
	return region, nil
}

func indexOfMarker(lines []string, from int, marker string) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == marker {
			return i
		}
	}
	return -1
}
