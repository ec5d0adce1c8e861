package tempo

import (
	"fmt"
	"path/filepath"
)

// FrameSink is the capability a host exposes for persisting its current
// visual state during render mode: "save what is on screen under this path".
// The ebitenhost subpackage provides a PNG implementation for Ebitengine.
type FrameSink interface {
	SaveFrame(path string) error
}

// SinkFunc adapts a function to the [FrameSink] interface.
type SinkFunc func(path string) error

// SaveFrame calls f(path).
func (f SinkFunc) SaveFrame(path string) error { return f(path) }

// FramePath returns the output path for the frame with the given index,
// built from the output directory and the filename pattern. Render mode uses
// FramePath(IndexOffset + renderedFrames) for each persisted frame.
func (t *Timeline) FramePath(index int) string {
	return filepath.Join(t.outputDir, fmt.Sprintf(t.filenamePattern, index))
}

// OutputPathPattern returns the joined output directory and filename
// pattern, with the %d placeholder still in place.
func (t *Timeline) OutputPathPattern() string {
	return filepath.Join(t.outputDir, t.filenamePattern)
}

// validatePattern checks that a filename pattern contains exactly one %d
// placeholder. Zero-padding and width flags ("%04d") are allowed; any other
// verb is rejected.
func validatePattern(pattern string) error {
	count := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i < len(pattern) && pattern[i] == '%' {
			continue // literal %%
		}
		for i < len(pattern) && (pattern[i] == '-' || pattern[i] == '+' ||
			pattern[i] == ' ' || (pattern[i] >= '0' && pattern[i] <= '9')) {
			i++
		}
		if i >= len(pattern) || pattern[i] != 'd' {
			return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
		count++
	}
	if count != 1 {
		return fmt.Errorf("%w: %q needs exactly one %%d placeholder", ErrBadPattern, pattern)
	}
	return nil
}
