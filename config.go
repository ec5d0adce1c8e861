package tempo

import (
	"fmt"
	"time"
)

// Defaults applied by [New] for zero-valued optional Config fields.
const (
	DefaultFrameRate       = 30
	DefaultOutputDir       = "animationOutput"
	DefaultFilenamePattern = "%d.png"
)

// Config describes a [Timeline] for [New]. Only Duration is required.
type Config struct {
	// Duration is the length of one loop. Must be positive.
	Duration time.Duration

	// FrameRate is the output frame rate used by render mode, in frames per
	// second. Defaults to DefaultFrameRate.
	FrameRate int

	// Mirror alternates playback direction each loop instead of restarting
	// from the beginning.
	Mirror bool

	// Backward starts playback at progress 1 moving toward 0.
	Backward bool

	// OutputDir is the directory render-mode frame paths are rooted at.
	// Defaults to DefaultOutputDir.
	OutputDir string

	// FilenamePattern names rendered frames. It must contain exactly one %d
	// placeholder (width and zero-padding flags allowed). Defaults to
	// DefaultFilenamePattern.
	FilenamePattern string

	// IndexOffset is added to the frame index in rendered filenames.
	IndexOffset int

	// ExitOnRenderFinish fires OnExitRequest after a render completes.
	ExitOnRenderFinish bool

	// Sink persists frames in render mode. Required before calling
	// [Timeline.Render].
	Sink FrameSink
}

// SetDuration changes the length of one loop and recomputes every windowed
// track's progress bounds. Rejected while playing or paused.
func (t *Timeline) SetDuration(d time.Duration) error {
	if t.playing || t.paused {
		return fmt.Errorf("%w: cannot change duration", ErrPlaybackActive)
	}
	millis := int(d.Milliseconds())
	if millis <= 0 {
		return fmt.Errorf("%w: %v", ErrBadDuration, d)
	}
	t.durationMillis = millis
	t.frameCount = t.computeFrameCount()
	for _, tr := range t.tracks {
		if !tr.fullLength {
			tr.updateWindowBounds()
		}
	}
	return nil
}

// SetMirror toggles mirrored looping. Rejected while playing or paused.
func (t *Timeline) SetMirror(mirror bool) error {
	if t.playing || t.paused {
		return fmt.Errorf("%w: cannot change mirror", ErrPlaybackActive)
	}
	t.mirror = mirror
	return nil
}

// SetForward sets the starting playback direction. Rejected while playing or
// paused.
func (t *Timeline) SetForward(forward bool) error {
	if t.playing || t.paused {
		return fmt.Errorf("%w: cannot change direction", ErrPlaybackActive)
	}
	t.forwardSetting = forward
	t.forward = forward
	return nil
}

// SetFrameRate changes the output frame rate and recomputes the frame count.
// Rejected while rendering.
func (t *Timeline) SetFrameRate(fps int) error {
	if t.rendering {
		return fmt.Errorf("%w: cannot change frame rate", ErrRenderActive)
	}
	if fps <= 0 {
		return fmt.Errorf("%w: %d", ErrBadFrameRate, fps)
	}
	t.frameRate = fps
	t.frameCount = t.computeFrameCount()
	return nil
}

// SetOutputDir changes the render output directory. Rejected while
// rendering.
func (t *Timeline) SetOutputDir(dir string) error {
	if t.rendering {
		return fmt.Errorf("%w: cannot change output dir", ErrRenderActive)
	}
	t.outputDir = dir
	return nil
}

// SetFilenamePattern changes the rendered frame filename pattern. Rejected
// while rendering.
func (t *Timeline) SetFilenamePattern(pattern string) error {
	if t.rendering {
		return fmt.Errorf("%w: cannot change filename pattern", ErrRenderActive)
	}
	if err := validatePattern(pattern); err != nil {
		return err
	}
	t.filenamePattern = pattern
	return nil
}

// SetIndexOffset changes the offset added to rendered frame indices.
// Rejected while rendering.
func (t *Timeline) SetIndexOffset(offset int) error {
	if t.rendering {
		return fmt.Errorf("%w: cannot change index offset", ErrRenderActive)
	}
	t.indexOffset = offset
	return nil
}

// SetFrameSink replaces the frame sink. Rejected while rendering.
func (t *Timeline) SetFrameSink(sink FrameSink) error {
	if t.rendering {
		return fmt.Errorf("%w: cannot change frame sink", ErrRenderActive)
	}
	t.sink = sink
	return nil
}

// SetExitOnRenderFinish toggles the exit request fired after a render
// completes.
func (t *Timeline) SetExitOnRenderFinish(exit bool) {
	t.exitOnRenderFinish = exit
}

// Duration returns the length of one loop.
func (t *Timeline) Duration() time.Duration {
	return time.Duration(t.durationMillis) * time.Millisecond
}

// FrameRate returns the output frame rate in frames per second.
func (t *Timeline) FrameRate() int { return t.frameRate }

// Mirror reports whether looping alternates direction each loop.
func (t *Timeline) Mirror() bool { return t.mirror }

// OutputDir returns the render output directory.
func (t *Timeline) OutputDir() string { return t.outputDir }

// FilenamePattern returns the rendered frame filename pattern.
func (t *Timeline) FilenamePattern() string { return t.filenamePattern }

// IndexOffset returns the offset added to rendered frame indices.
func (t *Timeline) IndexOffset() int { return t.indexOffset }

// ExitOnRenderFinish reports whether an exit request fires after a render
// completes.
func (t *Timeline) ExitOnRenderFinish() bool { return t.exitOnRenderFinish }
