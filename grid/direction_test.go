package grid

import (
	"testing"

	"github.com/milk9111/ladderfall/common"
)

func TestNewDirection1D(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want Direction1D
	}{
		{"zero", 0, Neutral},
		{"negative_zero", -0.0, Neutral},
		{"epsilon", common.Epsilon, Neutral},
		{"small_positive", 0.25, Positive},
		{"full_negative", -1, Negative},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NewDirection1D(c.in); got != c.want {
				t.Fatalf("NewDirection1D(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestDirectionOppositeIffOutsideEpsilon(t *testing.T) {
	values := []float64{0, 1e-5, -1e-4, common.Epsilon, 0.0011, -0.3, 0.5, 1, -1, 12.5}
	for _, v := range values {
		got := NewDirection1D(v).IsOpposite(NewDirection1D(-v))
		want := v > common.Epsilon || v < -common.Epsilon
		if got != want {
			t.Fatalf("v=%v: opposite=%v, want %v", v, got, want)
		}
	}
}

func TestNeutralNeverOpposite(t *testing.T) {
	for _, d := range []Direction1D{Negative, Neutral, Positive} {
		if Neutral.IsOpposite(d) || d.IsOpposite(Neutral) {
			t.Fatalf("neutral reported opposite to %v", d)
		}
	}
}

func TestAlignsWith(t *testing.T) {
	if !Positive.AlignsWith(0.7) {
		t.Fatalf("positive should align with 0.7")
	}
	if Positive.AlignsWith(-0.7) {
		t.Fatalf("positive should not align with -0.7")
	}
	if Neutral.AlignsWith(0) {
		t.Fatalf("neutral never aligns")
	}
	if Negative.AlignsWith(common.Epsilon / 2) {
		t.Fatalf("values inside epsilon never align")
	}
}

func TestDirection2DOpposite(t *testing.T) {
	cases := []struct {
		name string
		a, b Direction2D
		want bool
	}{
		{"x_reversal", Direction2D{X: Positive}, Direction2D{X: Negative}, true},
		{"y_reversal_only", Direction2D{X: Positive, Y: Positive}, Direction2D{X: Positive, Y: Negative}, true},
		{"same", Direction2D{X: Positive, Y: Negative}, Direction2D{X: Positive, Y: Negative}, false},
		{"neutral", Direction2D{}, Direction2D{X: Negative, Y: Negative}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.IsOpposite(c.b); got != c.want {
				t.Fatalf("IsOpposite = %v, want %v", got, c.want)
			}
		})
	}
	if !(Direction2D{}).IsNeutral() {
		t.Fatalf("zero value should be neutral")
	}
}

func TestPosArithmetic(t *testing.T) {
	p := Pos{X: 2, Y: -1}
	if got := p.Add(Pos{X: 1, Y: 3}); got != (Pos{X: 3, Y: 2}) {
		t.Fatalf("Add = %v", got)
	}
	if got := p.Sub(Pos{X: 2, Y: 2}); got != (Pos{X: 0, Y: -3}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := p.OffsetX(-4).OffsetY(1); got != (Pos{X: -2, Y: 0}) {
		t.Fatalf("Offset = %v", got)
	}
	if p != (Pos{X: 2, Y: -1}) {
		t.Fatalf("arithmetic mutated receiver")
	}
}
