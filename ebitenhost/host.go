// Package ebitenhost drives a [tempo.Timeline] from an Ebitengine game loop.
//
// [Game] wraps any [ebiten.Game] so the timeline's two-phase tick contract
// lands in the right places: PreTick runs before the wrapped Update, PostTick
// after the wrapped Draw. That way render mode persists exactly the frame the
// host just drew, and every track holds a stable value for the whole frame.
//
// [ScreenSink] is a [tempo.FrameSink] that captures the current screen to a
// PNG file.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tempo"
)

// Game wraps an inner game and a timeline. Pass it to [ebiten.RunGame].
type Game struct {
	inner    ebiten.Game
	timeline *tempo.Timeline
	sink     *ScreenSink
}

// New wraps inner so tl ticks around it each frame. sink may be nil; when
// set, it receives the screen every Draw so render mode can persist it.
func New(tl *tempo.Timeline, inner ebiten.Game, sink *ScreenSink) *Game {
	return &Game{inner: inner, timeline: tl, sink: sink}
}

// Update runs the timeline's PreTick, then the wrapped game's Update.
func (g *Game) Update() error {
	g.timeline.PreTick()
	return g.inner.Update()
}

// Draw hands the screen to the sink, runs the wrapped game's Draw, then the
// timeline's PostTick.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.sink != nil {
		g.sink.SetScreen(screen)
	}
	g.inner.Draw(screen)
	g.timeline.PostTick()
}

// Layout delegates to the wrapped game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.inner.Layout(outsideWidth, outsideHeight)
}
