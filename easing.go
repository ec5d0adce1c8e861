package tempo

import "github.com/fogleman/ease"

// Easing selects one of the 32 built-in easing curves. The zero value is
// [EasingLinear]. Curves are the canonical Penner formulations (via
// github.com/fogleman/ease) plus a simple rational in-out; back and elastic
// variants overshoot [0, 1] by design.
type Easing uint8

const (
	EasingLinear       Easing = iota // identity
	EasingSimpleInOut                // t²/(2(t²−t)+1)
	EasingQuadIn
	EasingQuadOut
	EasingQuadInOut
	EasingCubicIn
	EasingCubicOut
	EasingCubicInOut
	EasingQuartIn
	EasingQuartOut
	EasingQuartInOut
	EasingQuintIn
	EasingQuintOut
	EasingQuintInOut
	EasingSineIn
	EasingSineOut
	EasingSineInOut
	EasingCircIn
	EasingCircOut
	EasingCircInOut
	EasingExpoIn
	EasingExpoOut
	EasingExpoInOut
	EasingBackIn
	EasingBackOut
	EasingBackInOut
	EasingBounceIn
	EasingBounceOut
	EasingBounceInOut
	EasingElasticIn
	EasingElasticOut
	EasingElasticInOut
)

// Elastic curves use the Penner periods (0.3 for in/out, 0.45 for in-out).
var (
	elasticIn    = ease.InElasticFunction(0.3)
	elasticOut   = ease.OutElasticFunction(0.3)
	elasticInOut = ease.InOutElasticFunction(0.45)
)

// Ease maps a normalized input t in [0, 1] through the selected curve.
// An unknown selector falls back to identity and is reported once per call;
// it never panics.
func Ease(e Easing, t float64) float64 {
	switch e {
	case EasingLinear:
		return t
	case EasingSimpleInOut:
		return t * t / (2*(t*t-t) + 1)
	case EasingQuadIn:
		return ease.InQuad(t)
	case EasingQuadOut:
		return ease.OutQuad(t)
	case EasingQuadInOut:
		return ease.InOutQuad(t)
	case EasingCubicIn:
		return ease.InCubic(t)
	case EasingCubicOut:
		return ease.OutCubic(t)
	case EasingCubicInOut:
		return ease.InOutCubic(t)
	case EasingQuartIn:
		return ease.InQuart(t)
	case EasingQuartOut:
		return ease.OutQuart(t)
	case EasingQuartInOut:
		return ease.InOutQuart(t)
	case EasingQuintIn:
		return ease.InQuint(t)
	case EasingQuintOut:
		return ease.OutQuint(t)
	case EasingQuintInOut:
		return ease.InOutQuint(t)
	case EasingSineIn:
		return ease.InSine(t)
	case EasingSineOut:
		return ease.OutSine(t)
	case EasingSineInOut:
		return ease.InOutSine(t)
	case EasingCircIn:
		return ease.InCirc(t)
	case EasingCircOut:
		return ease.OutCirc(t)
	case EasingCircInOut:
		return ease.InOutCirc(t)
	case EasingExpoIn:
		return ease.InExpo(t)
	case EasingExpoOut:
		return ease.OutExpo(t)
	case EasingExpoInOut:
		return ease.InOutExpo(t)
	case EasingBackIn:
		return ease.InBack(t)
	case EasingBackOut:
		return ease.OutBack(t)
	case EasingBackInOut:
		return ease.InOutBack(t)
	case EasingBounceIn:
		return ease.InBounce(t)
	case EasingBounceOut:
		return ease.OutBounce(t)
	case EasingBounceInOut:
		return ease.InOutBounce(t)
	// The elastic formulations do not pin their endpoints exactly; hold them.
	case EasingElasticIn:
		if t == 0 || t == 1 {
			return t
		}
		return elasticIn(t)
	case EasingElasticOut:
		if t == 0 || t == 1 {
			return t
		}
		return elasticOut(t)
	case EasingElasticInOut:
		if t == 0 || t == 1 {
			return t
		}
		return elasticInOut(t)
	default:
		reportf("unknown easing selector %d; using linear", e)
		return t
	}
}
