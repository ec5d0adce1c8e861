package tempo

import "fmt"

// Kind classifies the numeric type behind a [Target]. Values written to an
// integral target are rounded to the nearest integer before the write.
type Kind uint8

const (
	KindInt     Kind = iota // int / []int
	KindFloat32             // float32 / []float32
	KindFloat64             // float64 / []float64
)

// Target is the capability a host exposes for one animated numeric slot:
// "write value v into this slot". The engine never reads a slot back; the
// transition endpoints come from the [TrackConfig].
type Target interface {
	// Kind declares the slot's numeric kind.
	Kind() Kind
	// Write stores v into the slot.
	Write(v float64) error
}

// resolver is implemented by the built-in adapters so AddTrack can surface
// nil pointers and bad slice indices at construction time instead of on the
// first tick.
type resolver interface {
	resolve() error
}

type float64Var struct{ p *float64 }

func (v float64Var) Kind() Kind            { return KindFloat64 }
func (v float64Var) Write(x float64) error { *v.p = x; return nil }
func (v float64Var) resolve() error {
	if v.p == nil {
		return ErrNilTarget
	}
	return nil
}

type float32Var struct{ p *float32 }

func (v float32Var) Kind() Kind            { return KindFloat32 }
func (v float32Var) Write(x float64) error { *v.p = float32(x); return nil }
func (v float32Var) resolve() error {
	if v.p == nil {
		return ErrNilTarget
	}
	return nil
}

type intVar struct{ p *int }

func (v intVar) Kind() Kind            { return KindInt }
func (v intVar) Write(x float64) error { *v.p = int(x); return nil }
func (v intVar) resolve() error {
	if v.p == nil {
		return ErrNilTarget
	}
	return nil
}

type float64Slice struct {
	s []float64
	i int
}

func (v float64Slice) Kind() Kind            { return KindFloat64 }
func (v float64Slice) Write(x float64) error { v.s[v.i] = x; return nil }
func (v float64Slice) resolve() error        { return checkIndex(v.i, len(v.s)) }

type float32Slice struct {
	s []float32
	i int
}

func (v float32Slice) Kind() Kind            { return KindFloat32 }
func (v float32Slice) Write(x float64) error { v.s[v.i] = float32(x); return nil }
func (v float32Slice) resolve() error        { return checkIndex(v.i, len(v.s)) }

type intSlice struct {
	s []int
	i int
}

func (v intSlice) Kind() Kind            { return KindInt }
func (v intSlice) Write(x float64) error { v.s[v.i] = int(x); return nil }
func (v intSlice) resolve() error        { return checkIndex(v.i, len(v.s)) }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d (len %d)", ErrBadIndex, i, n)
	}
	return nil
}

// Float64Var binds a track to a float64 variable.
func Float64Var(p *float64) Target { return float64Var{p} }

// Float32Var binds a track to a float32 variable.
func Float32Var(p *float32) Target { return float32Var{p} }

// IntVar binds a track to an int variable. Written values are rounded to the
// nearest integer.
func IntVar(p *int) Target { return intVar{p} }

// Float64Slice binds a track to one element of a float64 slice.
func Float64Slice(s []float64, i int) Target { return float64Slice{s, i} }

// Float32Slice binds a track to one element of a float32 slice.
func Float32Slice(s []float32, i int) Target { return float32Slice{s, i} }

// IntSlice binds a track to one element of an int slice. Written values are
// rounded to the nearest integer.
func IntSlice(s []int, i int) Target { return intSlice{s, i} }
