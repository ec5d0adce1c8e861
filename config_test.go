package tempo

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	tl, err := New(Config{Duration: 2 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tl.FrameRate(); got != DefaultFrameRate {
		t.Errorf("FrameRate = %d, want %d", got, DefaultFrameRate)
	}
	if got := tl.OutputDir(); got != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", got, DefaultOutputDir)
	}
	if got := tl.FilenamePattern(); got != DefaultFilenamePattern {
		t.Errorf("FilenamePattern = %q, want %q", got, DefaultFilenamePattern)
	}
	if got := tl.IndexOffset(); got != 0 {
		t.Errorf("IndexOffset = %d, want 0", got)
	}
	if tl.State() != StateIdle {
		t.Errorf("State = %d, want StateIdle", tl.State())
	}
	if !tl.Forward() || tl.Mirror() || tl.ExitOnRenderFinish() {
		t.Error("flag defaults wrong: want forward, no mirror, no exit")
	}
	if got := tl.FrameCount(); got != 60 {
		t.Errorf("FrameCount = %d, want 60 (30 fps x 2 s)", got)
	}
	if got := tl.Progress(); got != 0 {
		t.Errorf("Progress = %f, want 0", got)
	}
}

func TestNewBackwardStartsAtOne(t *testing.T) {
	tl, err := New(Config{Duration: time.Second, Backward: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tl.Forward() {
		t.Error("Forward = true, want false")
	}
	if got := tl.Progress(); got != 1 {
		t.Errorf("Progress = %f, want 1", got)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero duration", Config{}, ErrBadDuration},
		{"negative duration", Config{Duration: -time.Second}, ErrBadDuration},
		{"sub-millisecond duration", Config{Duration: 100 * time.Microsecond}, ErrBadDuration},
		{"negative frame rate", Config{Duration: time.Second, FrameRate: -1}, ErrBadFrameRate},
		{"bad pattern", Config{Duration: time.Second, FilenamePattern: "x.png"}, ErrBadPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("New = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOutputSettersRejectedWhileRendering(t *testing.T) {
	tl, err := New(Config{
		Duration: time.Second,
		Sink:     SinkFunc(func(string) error { return nil }),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	quietReports(t)
	if err := tl.Render(1); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if err := tl.SetFrameRate(60); !errors.Is(err, ErrRenderActive) {
		t.Errorf("SetFrameRate = %v, want ErrRenderActive", err)
	}
	if err := tl.SetOutputDir("elsewhere"); !errors.Is(err, ErrRenderActive) {
		t.Errorf("SetOutputDir = %v, want ErrRenderActive", err)
	}
	if err := tl.SetFilenamePattern("%03d.png"); !errors.Is(err, ErrRenderActive) {
		t.Errorf("SetFilenamePattern = %v, want ErrRenderActive", err)
	}
	if err := tl.SetIndexOffset(9); !errors.Is(err, ErrRenderActive) {
		t.Errorf("SetIndexOffset = %v, want ErrRenderActive", err)
	}
	if err := tl.SetFrameSink(nil); !errors.Is(err, ErrRenderActive) {
		t.Errorf("SetFrameSink = %v, want ErrRenderActive", err)
	}

	if tl.FrameRate() != DefaultFrameRate || tl.OutputDir() != DefaultOutputDir ||
		tl.FilenamePattern() != DefaultFilenamePattern || tl.IndexOffset() != 0 {
		t.Error("rejected setter mutated output configuration")
	}

	// Always allowed, even mid-render.
	tl.SetExitOnRenderFinish(true)
	if !tl.ExitOnRenderFinish() {
		t.Error("SetExitOnRenderFinish did not apply")
	}
}

func TestOutputSettersApplyWhenIdle(t *testing.T) {
	tl, err := New(Config{Duration: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := tl.SetFrameRate(60); err != nil {
		t.Fatalf("SetFrameRate: %v", err)
	}
	if got := tl.FrameCount(); got != 60 {
		t.Errorf("FrameCount after SetFrameRate = %d, want 60", got)
	}
	if err := tl.SetFrameRate(0); !errors.Is(err, ErrBadFrameRate) {
		t.Errorf("SetFrameRate(0) = %v, want ErrBadFrameRate", err)
	}

	if err := tl.SetFilenamePattern("no placeholder"); !errors.Is(err, ErrBadPattern) {
		t.Errorf("SetFilenamePattern = %v, want ErrBadPattern", err)
	}
	if err := tl.SetFilenamePattern("take_%03d.png"); err != nil {
		t.Fatalf("SetFilenamePattern: %v", err)
	}
	if err := tl.SetOutputDir("caps"); err != nil {
		t.Fatalf("SetOutputDir: %v", err)
	}
	if err := tl.SetIndexOffset(500); err != nil {
		t.Fatalf("SetIndexOffset: %v", err)
	}
	want := filepath.Join("caps", "take_500.png")
	if got := tl.FramePath(tl.IndexOffset()); got != want {
		t.Errorf("FramePath = %q, want %q", got, want)
	}
}
