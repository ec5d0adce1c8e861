package tempo

import (
	"fmt"
	"math"
	"time"
)

// TrackConfig describes one animated slot for [Timeline.AddTrack].
type TrackConfig struct {
	// Target is the slot the track writes each tick. Required.
	Target Target

	// From and To are the transition endpoints.
	From, To float64

	// Start and End restrict the transition to a window within the timeline.
	// Leaving both zero makes the track span the full timeline length.
	// Outside its window a track is pinned at From (before) or To (after).
	Start, End time.Duration

	// Easing selects the curve applied to the track's local progress.
	// The zero value is EasingLinear.
	Easing Easing

	// DisableEasing skips the easing step entirely.
	DisableEasing bool
}

// Track associates a [Target] with a from/to transition on its parent
// [Timeline]. Tracks are created with [Timeline.AddTrack], updated by the
// timeline every PreTick, and live exactly as long as the timeline.
//
// A track whose target failed to resolve, or whose write failed once, is
// invalid: it is skipped on every subsequent tick but never aborts the
// timeline or the other tracks.
type Track struct {
	timeline *Timeline
	target   Target
	kind     Kind
	invalid  bool

	from, to float64

	fullLength  bool
	startMillis int
	endMillis   int

	startProgress float64
	endProgress   float64

	easing        Easing
	easingEnabled bool

	localProgress float64
	value         float64
}

// AddTrack attaches a new track to the timeline. Track update order is
// insertion order.
//
// A window or easing problem in cfg rejects the track outright (nil Track,
// error). A target that fails to resolve returns both the attached track,
// marked invalid and skipped on every tick, and the resolution error: strict
// hosts abort on the error, lenient hosts log it and keep going.
func (t *Timeline) AddTrack(cfg TrackConfig) (*Track, error) {
	if cfg.Easing > EasingElasticInOut {
		return nil, fmt.Errorf("%w: %d", ErrBadEasing, cfg.Easing)
	}
	tr := &Track{
		timeline:      t,
		target:        cfg.Target,
		from:          cfg.From,
		to:            cfg.To,
		fullLength:    true,
		easing:        cfg.Easing,
		easingEnabled: !cfg.DisableEasing,
	}
	if cfg.Start != 0 || cfg.End != 0 {
		if cfg.Start < 0 || cfg.End <= cfg.Start {
			return nil, fmt.Errorf("%w: [%v, %v]", ErrBadWindow, cfg.Start, cfg.End)
		}
		tr.fullLength = false
		tr.startMillis = int(cfg.Start.Milliseconds())
		tr.endMillis = int(cfg.End.Milliseconds())
		tr.updateWindowBounds()
	}
	if err := resolveTarget(cfg.Target); err != nil {
		tr.invalid = true
		t.tracks = append(t.tracks, tr)
		return tr, fmt.Errorf("resolve target: %w", err)
	}
	tr.kind = cfg.Target.Kind()
	t.tracks = append(t.tracks, tr)
	return tr, nil
}

// Tracks returns the attached tracks in update order.
func (t *Timeline) Tracks() []*Track { return t.tracks }

func resolveTarget(tgt Target) error {
	if tgt == nil {
		return ErrNilTarget
	}
	if r, ok := tgt.(resolver); ok {
		if err := r.resolve(); err != nil {
			return err
		}
	}
	switch tgt.Kind() {
	case KindInt, KindFloat32, KindFloat64:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrTargetKind, tgt.Kind())
	}
}

// update recomputes the track's value from the timeline's global progress and
// writes it through the target. Called once per PreTick.
func (tr *Track) update(progress float64) {
	if tr.invalid {
		return
	}

	p := progress
	if !tr.fullLength {
		p = clamp(p, tr.startProgress, tr.endProgress)
		p = mapRange(p, tr.startProgress, tr.endProgress, 0, 1)
	}
	if tr.easingEnabled {
		p = Ease(tr.easing, p)
	}
	tr.localProgress = p
	tr.value = lerp(tr.from, tr.to, p)

	v := tr.value
	if tr.kind == KindInt {
		v = math.Round(v)
	}
	if err := tr.target.Write(v); err != nil {
		tr.invalid = true
		reportf("track write failed: %v; track disabled", err)
	}
}

// updateWindowBounds recomputes the window's progress bounds from the
// timeline duration. Called whenever the duration changes.
func (tr *Track) updateWindowBounds() {
	d := float64(tr.timeline.durationMillis)
	tr.startProgress = float64(tr.startMillis) / d
	tr.endProgress = float64(tr.endMillis) / d
}

// SetRange replaces the transition endpoints.
func (tr *Track) SetRange(from, to float64) {
	tr.from = from
	tr.to = to
}

// SetWindow restricts the transition to the [start, end] window within the
// timeline.
func (tr *Track) SetWindow(start, end time.Duration) error {
	if start < 0 || end <= start {
		return fmt.Errorf("%w: [%v, %v]", ErrBadWindow, start, end)
	}
	tr.fullLength = false
	tr.startMillis = int(start.Milliseconds())
	tr.endMillis = int(end.Milliseconds())
	tr.updateWindowBounds()
	return nil
}

// SetFullLength makes the transition span the full timeline length.
func (tr *Track) SetFullLength() { tr.fullLength = true }

// SetEasing replaces the track's easing curve.
func (tr *Track) SetEasing(e Easing) error {
	if e > EasingElasticInOut {
		return fmt.Errorf("%w: %d", ErrBadEasing, e)
	}
	tr.easing = e
	return nil
}

// SetEasingEnabled toggles the easing step. With easing disabled the track's
// local progress maps linearly onto [From, To].
func (tr *Track) SetEasingEnabled(enabled bool) { tr.easingEnabled = enabled }

// From returns the transition's initial value.
func (tr *Track) From() float64 { return tr.from }

// To returns the transition's final value.
func (tr *Track) To() float64 { return tr.to }

// Value returns the last computed value.
func (tr *Track) Value() float64 { return tr.value }

// LocalProgress returns the track's normalized position after windowing and
// easing, as of the last update.
func (tr *Track) LocalProgress() float64 { return tr.localProgress }

// WindowStart returns the start of the track's window. Zero for full-length
// tracks.
func (tr *Track) WindowStart() time.Duration {
	return time.Duration(tr.startMillis) * time.Millisecond
}

// WindowEnd returns the end of the track's window. Zero for full-length
// tracks.
func (tr *Track) WindowEnd() time.Duration {
	return time.Duration(tr.endMillis) * time.Millisecond
}

// FullLength reports whether the transition spans the full timeline.
func (tr *Track) FullLength() bool { return tr.fullLength }

// Easing returns the track's easing selector.
func (tr *Track) Easing() Easing { return tr.easing }

// EasingEnabled reports whether the easing step is applied.
func (tr *Track) EasingEnabled() bool { return tr.easingEnabled }

// Valid reports whether the track is still being updated. A track becomes
// invalid when its target fails to resolve or a write fails.
func (tr *Track) Valid() bool { return !tr.invalid }

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapRange linearly remaps v from [inLo, inHi] onto [outLo, outHi]. A
// degenerate input range maps to outLo rather than NaN.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
