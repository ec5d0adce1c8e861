// Package tempo is a declarative timeline/tweening engine driven by an
// external tick loop.
//
// A [Timeline] owns a duration, a playback state machine, and an ordered set
// of [Track] values. Each track binds a numeric slot exposed by the host (a
// [Target]) to a from/to transition, optionally restricted to a time window
// within the timeline and shaped by one of 32 easing curves (see [Easing]).
// The engine never draws anything and never owns a loop: it only computes
// numbers and writes them into the supplied slots.
//
// # Tick contract
//
// The host calls [Timeline.PreTick] before its own per-frame update and
// [Timeline.PostTick] after it. PreTick pushes the progress computed on the
// previous frame into every track, so all tracks observe the same value for
// the whole host frame; PostTick then advances the clock (or the frame
// counter, in render mode) and recomputes progress for the next frame. Both
// MUST be called exactly once per host frame, in that order.
//
// # Quick start
//
//	x := 0.0
//	tl, err := tempo.New(tempo.Config{Duration: 2 * time.Second})
//	if err != nil {
//		log.Fatal(err)
//	}
//	tl.AddTrack(tempo.TrackConfig{
//		Target: tempo.Float64Var(&x),
//		From:   0, To: 100,
//		Easing: tempo.EasingQuadInOut,
//	})
//	tl.Loop(0) // loop forever
//
//	// each host frame:
//	tl.PreTick()
//	// ... draw using x ...
//	tl.PostTick()
//
// # Render mode
//
// [Timeline.Render] switches from wall-clock playback to deterministic,
// frame-counted playback: every PostTick persists exactly one frame through
// the configured [FrameSink] and advances exactly one frame, however long the
// host took to produce it. The output path comes from the output directory,
// the filename pattern (one %d placeholder), and the index offset.
//
// # Threading
//
// A Timeline holds no synchronization of its own. All mutation happens
// synchronously inside PreTick/PostTick and the public setters; a
// multi-threaded host must serialize every call into the engine.
//
// The ebitenhost subpackage adapts the tick contract and the frame sink to
// [Ebitengine] games.
//
// [Ebitengine]: https://ebitengine.org
package tempo
