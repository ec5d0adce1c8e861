package tempo

import "errors"

// Sentinel errors returned by configuration and track construction. Match
// with [errors.Is]; returned errors may carry additional context via
// wrapping.
var (
	// ErrPlaybackActive rejects configuration changes that are not allowed
	// while the timeline is playing or paused (duration, mirror, direction).
	ErrPlaybackActive = errors.New("tempo: playback in progress")

	// ErrRenderActive rejects output configuration changes while a render is
	// in progress (frame rate, directory, pattern, offset, sink).
	ErrRenderActive = errors.New("tempo: rendering in progress")

	// ErrNilTarget reports a track whose target is nil or whose underlying
	// pointer is nil.
	ErrNilTarget = errors.New("tempo: nil target")

	// ErrTargetKind reports a target with a numeric kind outside the
	// supported set.
	ErrTargetKind = errors.New("tempo: unsupported target kind")

	// ErrBadIndex reports a slice target whose index is out of range.
	ErrBadIndex = errors.New("tempo: slice index out of range")

	// ErrBadPattern reports a filename pattern without exactly one %d
	// placeholder.
	ErrBadPattern = errors.New("tempo: bad filename pattern")

	// ErrBadDuration reports a non-positive timeline duration.
	ErrBadDuration = errors.New("tempo: bad duration")

	// ErrBadFrameRate reports a non-positive output frame rate.
	ErrBadFrameRate = errors.New("tempo: bad frame rate")

	// ErrBadLoopCount reports a non-positive render loop count.
	ErrBadLoopCount = errors.New("tempo: bad loop count")

	// ErrBadWindow reports a track window with a negative start or an end
	// not after its start.
	ErrBadWindow = errors.New("tempo: bad track window")

	// ErrBadEasing reports an easing selector outside the defined set.
	ErrBadEasing = errors.New("tempo: unknown easing selector")

	// ErrNoSink reports a render started without a frame sink configured.
	ErrNoSink = errors.New("tempo: no frame sink configured")
)
