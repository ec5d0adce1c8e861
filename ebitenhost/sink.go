package ebitenhost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenSink persists the current Ebitengine screen as PNG files. Attach it
// to a timeline via tempo.Config.Sink (or SetFrameSink) and to a [Game] so it
// sees each frame's screen before PostTick saves it.
type ScreenSink struct {
	screen *ebiten.Image
}

// SetScreen records the image the next SaveFrame reads from. [Game.Draw]
// calls this every frame.
func (s *ScreenSink) SetScreen(screen *ebiten.Image) {
	s.screen = screen
}

// SaveFrame captures the recorded screen and writes it to path, creating the
// directory if needed.
func (s *ScreenSink) SaveFrame(path string) error {
	if s.screen == nil {
		return fmt.Errorf("save %s: no screen captured yet", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	bounds := s.screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	s.screen.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	return writePNG(path, img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
