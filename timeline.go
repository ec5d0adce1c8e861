package tempo

import (
	"fmt"
	"math"
	"time"
)

// State is the timeline's lifecycle phase, derived from its playback flags.
type State uint8

const (
	StateIdle     State = iota // created, never played
	StatePlaying               // advancing (playback or render mode)
	StatePaused                // frozen mid-playback, resumable
	StateFinished              // stopped or naturally completed
)

// Timeline owns a duration, the playback state machine, the progress clock,
// and the ordered tracks it drives. It is advanced exclusively by the host's
// PreTick/PostTick calls; see the package documentation for the tick
// contract.
type Timeline struct {
	durationMillis int
	frameRate      int

	outputDir       string
	filenamePattern string
	indexOffset     int

	exitOnRenderFinish bool

	sink FrameSink
	now  func() time.Time

	tracks []*Track

	playing   bool
	paused    bool
	looping   bool
	rendering bool
	mirror    bool
	finished  bool

	forward        bool // current playback direction
	forwardSetting bool // configured starting direction

	loopsToDo int // loops or render passes to run; 0 = infinite while looping
	loopCount int

	elapsedMillis int
	lastTick      time.Time

	frameCount          int // frames per loop at the current frame rate
	currentFrame        int
	renderedFrames      int
	totalFramesToRender int
	lastPercent         int

	progress float64

	// OnFinished is called once per natural completion (the configured loops
	// or frames ran out). An explicit Stop never fires it.
	OnFinished func(*Timeline)

	// OnLoopEnd is called once per loop boundary crossing while looping or
	// rendering, mirrored or not. On the final boundary it fires before
	// OnFinished.
	OnLoopEnd func(*Timeline)

	// OnExitRequest is called after a render completes when
	// ExitOnRenderFinish is set. The host decides how to terminate.
	OnExitRequest func()

	// A notification handler that panics is reported and permanently
	// disabled; playback continues.
	finishedDisabled bool
	loopEndDisabled  bool
}

// New creates a timeline from cfg. Zero-valued optional fields take the
// package defaults; a zero Duration is an error.
func New(cfg Config) (*Timeline, error) {
	millis := int(cfg.Duration.Milliseconds())
	if millis <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadDuration, cfg.Duration)
	}
	frameRate := cfg.FrameRate
	if frameRate == 0 {
		frameRate = DefaultFrameRate
	}
	if frameRate < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadFrameRate, cfg.FrameRate)
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	pattern := cfg.FilenamePattern
	if pattern == "" {
		pattern = DefaultFilenamePattern
	}
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	t := &Timeline{
		durationMillis:     millis,
		frameRate:          frameRate,
		outputDir:          dir,
		filenamePattern:    pattern,
		indexOffset:        cfg.IndexOffset,
		exitOnRenderFinish: cfg.ExitOnRenderFinish,
		sink:               cfg.Sink,
		now:                time.Now,
		mirror:             cfg.Mirror,
		forward:            !cfg.Backward,
		forwardSetting:     !cfg.Backward,
		loopsToDo:          1,
	}
	t.frameCount = t.computeFrameCount()
	if !t.forward {
		t.progress = 1
	}
	return t, nil
}

// Play starts playback from the configured direction's start, or resumes it
// when paused. Resuming only re-anchors the clock; counters are untouched.
func (t *Timeline) Play() {
	if t.paused {
		t.paused = false
		t.playing = true
		t.lastTick = t.now()
		return
	}
	if t.playing {
		return
	}
	t.prepare()
	t.playing = true
}

// Loop starts looped playback. n is the number of loops to run; 0 loops
// forever.
func (t *Timeline) Loop(n int) {
	t.looping = true
	if n < 0 {
		n = 0
	}
	t.loopsToDo = n
	t.loopCount = 0
	t.Play()
}

// Render starts deterministic frame-counted playback for n passes over the
// timeline, persisting one frame per PostTick through the configured
// [FrameSink]. A no-op while already rendering.
func (t *Timeline) Render(n int) error {
	if t.rendering {
		return nil
	}
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrBadLoopCount, n)
	}
	if t.sink == nil {
		return ErrNoSink
	}
	t.Stop()
	t.frameCount = t.computeFrameCount()
	t.loopsToDo = n
	t.totalFramesToRender = n * t.frameCount
	t.rendering = true
	t.Play()
	reportf("rendering started: %d frames", t.totalFramesToRender)
	return nil
}

// Pause freezes playback. Only valid while playing; Play resumes.
func (t *Timeline) Pause() {
	if !t.playing {
		return
	}
	t.playing = false
	t.paused = true
}

// Stop halts playback, looping, and rendering, and marks the timeline
// finished. Always callable and idempotent. Stop never fires OnFinished;
// only natural completion does.
func (t *Timeline) Stop() {
	t.playing = false
	t.paused = false
	t.looping = false
	t.rendering = false
	t.finished = true
	t.loopsToDo = 1
}

// prepare resets the run-scoped counters directly before playback starts.
func (t *Timeline) prepare() {
	t.renderedFrames = 0
	t.loopCount = 0
	t.elapsedMillis = 0
	t.lastTick = t.now()
	t.lastPercent = -1
	t.finished = false
	t.forward = t.forwardSetting
	if t.forward {
		t.currentFrame = 0
		t.progress = 0
	} else {
		t.currentFrame = t.frameCount - 1
		t.progress = 1
	}
}

// PreTick pushes the progress computed on the previous frame into every
// track. Call once per host frame, before the host's own update. No-op
// unless playing.
func (t *Timeline) PreTick() {
	if !t.playing {
		return
	}
	for _, tr := range t.tracks {
		tr.update(t.progress)
	}
}

// PostTick advances the timeline by one tick: the wall clock in playback
// mode, one frame in render mode. Call once per host frame, after the host's
// own update. No-op unless playing.
func (t *Timeline) PostTick() {
	if !t.playing {
		return
	}
	if t.rendering {
		t.advanceRender()
	} else {
		t.advancePlayback()
	}
}

func (t *Timeline) advancePlayback() {
	// The boundary check runs on the elapsed value the previous tick
	// produced, so the end-of-loop progress was observable for one full host
	// frame before the loop restarts.
	if t.elapsedMillis >= t.durationMillis {
		t.loopCount++
		if !t.looping {
			t.finish()
			return
		}
		t.elapsedMillis = 0
		if t.mirror {
			t.forward = !t.forward
		}
		t.fireLoopEnd()
		if t.loopsToDo != 0 && t.loopCount >= t.loopsToDo {
			t.finish()
			return
		}
	}

	now := t.now()
	t.elapsedMillis += int(now.Sub(t.lastTick).Milliseconds())
	t.lastTick = now
	if t.elapsedMillis < 0 {
		t.elapsedMillis = 0
	} else if t.elapsedMillis > t.durationMillis {
		t.elapsedMillis = t.durationMillis
	}

	if t.forward {
		t.progress = mapRange(float64(t.elapsedMillis), 0, float64(t.durationMillis), 0, 1)
	} else {
		t.progress = mapRange(float64(t.elapsedMillis), 0, float64(t.durationMillis), 1, 0)
	}
}

func (t *Timeline) advanceRender() {
	path := t.FramePath(t.indexOffset + t.renderedFrames)
	if err := t.sink.SaveFrame(path); err != nil {
		// A failed frame is reported; rendering continues.
		reportf("save frame: %v", err)
	}
	t.renderedFrames++

	if pct := 100 * t.renderedFrames / t.totalFramesToRender; pct != t.lastPercent {
		t.lastPercent = pct
		reportf("rendering %d%%", pct)
	}

	atBoundary := t.forward && t.currentFrame == t.frameCount-1 ||
		!t.forward && t.currentFrame == 0
	switch {
	case atBoundary:
		t.loopCount++
		if t.mirror {
			// Hold the boundary frame; the next step moves the other way.
			t.forward = !t.forward
		} else if t.forward {
			t.currentFrame = 0
		} else {
			t.currentFrame = t.frameCount - 1
		}
		t.fireLoopEnd()
	case t.forward:
		t.currentFrame++
	default:
		t.currentFrame--
	}

	// A single-frame render has no frame span to map; progress holds the
	// anchor prepare() set.
	if t.frameCount > 1 {
		t.progress = mapRange(float64(t.currentFrame), 0, float64(t.frameCount-1), 0, 1)
	}

	if t.renderedFrames >= t.totalFramesToRender {
		t.finish()
		reportf("rendering done")
		t.fireExitRequest()
	}
}

// finish is natural completion: Stop plus the OnFinished notification.
func (t *Timeline) finish() {
	t.Stop()
	t.fireFinished()
}

func (t *Timeline) computeFrameCount() int {
	n := int(math.Round(float64(t.frameRate) * float64(t.durationMillis) / 1000))
	if n < 1 {
		n = 1
	}
	return n
}

func (t *Timeline) fireFinished() {
	if t.OnFinished == nil || t.finishedDisabled {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.finishedDisabled = true
			reportf("OnFinished handler panicked: %v; channel disabled", r)
		}
	}()
	t.OnFinished(t)
}

func (t *Timeline) fireLoopEnd() {
	if !t.looping && !t.rendering {
		return
	}
	if t.OnLoopEnd == nil || t.loopEndDisabled {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.loopEndDisabled = true
			reportf("OnLoopEnd handler panicked: %v; channel disabled", r)
		}
	}()
	t.OnLoopEnd(t)
}

func (t *Timeline) fireExitRequest() {
	if !t.exitOnRenderFinish || t.OnExitRequest == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			reportf("OnExitRequest handler panicked: %v", r)
		}
	}()
	t.OnExitRequest()
}

// State returns the current lifecycle phase.
func (t *Timeline) State() State {
	switch {
	case t.playing:
		return StatePlaying
	case t.paused:
		return StatePaused
	case t.finished:
		return StateFinished
	default:
		return StateIdle
	}
}

// Progress returns the normalized position in the current loop, the value
// the next PreTick will push to every track.
func (t *Timeline) Progress() float64 { return t.progress }

// Elapsed returns the wall-clock progress through the current loop.
// Meaningful in playback mode only.
func (t *Timeline) Elapsed() time.Duration {
	return time.Duration(t.elapsedMillis) * time.Millisecond
}

// LoopCount returns the number of loop boundaries crossed since playback
// started.
func (t *Timeline) LoopCount() int { return t.loopCount }

// FrameCount returns the number of frames one loop spans at the current
// frame rate.
func (t *Timeline) FrameCount() int { return t.frameCount }

// RenderedFrames returns the number of frames persisted in the current
// render.
func (t *Timeline) RenderedFrames() int { return t.renderedFrames }

// IsPlaying reports whether the timeline is advancing.
func (t *Timeline) IsPlaying() bool { return t.playing }

// IsPaused reports whether playback is frozen and resumable.
func (t *Timeline) IsPaused() bool { return t.paused }

// IsFinished reports whether playback stopped or completed naturally.
func (t *Timeline) IsFinished() bool { return t.finished }

// IsLooping reports whether looped playback is active.
func (t *Timeline) IsLooping() bool { return t.looping }

// IsRendering reports whether frame-counted render mode is active.
func (t *Timeline) IsRendering() bool { return t.rendering }

// Forward reports the current playback direction. Mirrored looping flips it
// at each loop boundary.
func (t *Timeline) Forward() bool { return t.forward }
