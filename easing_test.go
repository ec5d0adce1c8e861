package tempo

import (
	"math"
	"testing"
)

const eps = 1e-9

// allEasings lists every defined selector with its name for subtests.
var allEasings = []struct {
	e    Easing
	name string
}{
	{EasingLinear, "Linear"},
	{EasingSimpleInOut, "SimpleInOut"},
	{EasingQuadIn, "QuadIn"},
	{EasingQuadOut, "QuadOut"},
	{EasingQuadInOut, "QuadInOut"},
	{EasingCubicIn, "CubicIn"},
	{EasingCubicOut, "CubicOut"},
	{EasingCubicInOut, "CubicInOut"},
	{EasingQuartIn, "QuartIn"},
	{EasingQuartOut, "QuartOut"},
	{EasingQuartInOut, "QuartInOut"},
	{EasingQuintIn, "QuintIn"},
	{EasingQuintOut, "QuintOut"},
	{EasingQuintInOut, "QuintInOut"},
	{EasingSineIn, "SineIn"},
	{EasingSineOut, "SineOut"},
	{EasingSineInOut, "SineInOut"},
	{EasingCircIn, "CircIn"},
	{EasingCircOut, "CircOut"},
	{EasingCircInOut, "CircInOut"},
	{EasingExpoIn, "ExpoIn"},
	{EasingExpoOut, "ExpoOut"},
	{EasingExpoInOut, "ExpoInOut"},
	{EasingBackIn, "BackIn"},
	{EasingBackOut, "BackOut"},
	{EasingBackInOut, "BackInOut"},
	{EasingBounceIn, "BounceIn"},
	{EasingBounceOut, "BounceOut"},
	{EasingBounceInOut, "BounceInOut"},
	{EasingElasticIn, "ElasticIn"},
	{EasingElasticOut, "ElasticOut"},
	{EasingElasticInOut, "ElasticInOut"},
}

func TestEaseLinearIsIdentity(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		if got := Ease(EasingLinear, v); got != v {
			t.Errorf("Ease(EasingLinear, %f) = %f, want %f", v, got, v)
		}
	}
}

func TestEaseEndpoints(t *testing.T) {
	for _, tt := range allEasings {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ease(tt.e, 0); math.Abs(got) > eps {
				t.Errorf("Ease(%s, 0) = %g, want 0", tt.name, got)
			}
			if got := Ease(tt.e, 1); math.Abs(got-1) > eps {
				t.Errorf("Ease(%s, 1) = %g, want 1", tt.name, got)
			}
		})
	}
}

func TestEaseSimpleInOut(t *testing.T) {
	// t²/(2(t²−t)+1) spot values.
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.0625 / 0.625},
		{0.5, 0.5},
		{0.75, 0.5625 / 0.625},
		{1, 1},
	}
	for _, tt := range tests {
		if got := Ease(EasingSimpleInOut, tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("Ease(EasingSimpleInOut, %f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestEaseFamilies(t *testing.T) {
	// One mid-curve value per polynomial family pins the dispatch table.
	tests := []struct {
		e    Easing
		name string
		in   float64
		want float64
	}{
		{EasingQuadIn, "QuadIn", 0.5, 0.25},
		{EasingQuadOut, "QuadOut", 0.5, 0.75},
		{EasingQuadInOut, "QuadInOut", 0.25, 0.125},
		{EasingCubicIn, "CubicIn", 0.5, 0.125},
		{EasingQuartIn, "QuartIn", 0.5, 0.0625},
		{EasingQuintIn, "QuintIn", 0.5, 0.03125},
		{EasingSineIn, "SineIn", 0.5, 1 - math.Cos(math.Pi/4)},
		{EasingCircIn, "CircIn", 0.5, 1 - math.Sqrt(0.75)},
		{EasingExpoIn, "ExpoIn", 0.5, math.Pow(2, -5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ease(tt.e, tt.in); math.Abs(got-tt.want) > eps {
				t.Errorf("Ease(%s, %f) = %f, want %f", tt.name, tt.in, got, tt.want)
			}
		})
	}
}

func TestEaseOvershootFamilies(t *testing.T) {
	// Back-in dips below zero early; elastic-out overshoots past one.
	undershot := false
	for v := 0.05; v < 0.5; v += 0.05 {
		if Ease(EasingBackIn, v) < 0 {
			undershot = true
			break
		}
	}
	if !undershot {
		t.Error("Ease(EasingBackIn, ·) never dipped below 0 on (0, 0.5)")
	}

	overshot := false
	for v := 0.05; v < 1; v += 0.01 {
		if Ease(EasingElasticOut, v) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("Ease(EasingElasticOut, ·) never exceeded 1 on (0, 1)")
	}
}

func TestEaseUnknownSelectorFallsBack(t *testing.T) {
	for _, v := range []float64{0, 0.3, 1} {
		if got := Ease(Easing(99), v); got != v {
			t.Errorf("Ease(99, %f) = %f, want identity %f", v, got, v)
		}
	}
}

// Catch accidental iota drift against the fixed selector numbering.
func TestEasingValues(t *testing.T) {
	if EasingLinear != 0 {
		t.Errorf("EasingLinear = %d, want 0", EasingLinear)
	}
	if EasingSimpleInOut != 1 {
		t.Errorf("EasingSimpleInOut = %d, want 1", EasingSimpleInOut)
	}
	if EasingQuadIn != 2 {
		t.Errorf("EasingQuadIn = %d, want 2", EasingQuadIn)
	}
	if EasingSineIn != 14 {
		t.Errorf("EasingSineIn = %d, want 14", EasingSineIn)
	}
	if EasingExpoIn != 20 {
		t.Errorf("EasingExpoIn = %d, want 20", EasingExpoIn)
	}
	if EasingElasticInOut != 31 {
		t.Errorf("EasingElasticInOut = %d, want 31", EasingElasticInOut)
	}
	if len(allEasings) != 32 {
		t.Errorf("selector table has %d entries, want 32", len(allEasings))
	}
}
