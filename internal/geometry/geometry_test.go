package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestOffset(t *testing.T) {
	got := Offset(Pt(10, 5), Pt(3, 8))
	if got != Pt(7, -3) {
		t.Errorf("Offset: got %v, want (7, -3)", got)
	}
}

func TestOffset_Antisymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
	}{
		{"origin", Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(12.5, 40), Pt(3, 1.25)},
		{"mixed signs", Pt(-100, 250), Pt(75.5, -12)},
		{"large", Pt(1e9, -1e9), Pt(-3e8, 7e8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Offset(tt.a, tt.b)
			ba := Offset(tt.b, tt.a)
			if ab != ba.Neg() {
				t.Errorf("Offset(a,b)=%v, -Offset(b,a)=%v", ab, ba.Neg())
			}
		})
	}
}

func TestCanvasRegion(t *testing.T) {
	r, err := CanvasRegion(10, 20, 100, 50)
	if err != nil {
		t.Fatalf("CanvasRegion failed: %v", err)
	}

	want := Region{Left: 10, Top: -20, Right: 110, Bottom: -70}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size: got %gx%g, want 100x50", r.Width(), r.Height())
	}
	if r.TopLeft() != Pt(10, -20) {
		t.Errorf("TopLeft: got %v", r.TopLeft())
	}
	if r.BottomLeft() != Pt(10, -70) {
		t.Errorf("BottomLeft: got %v", r.BottomLeft())
	}
}

func TestCanvasRegion_NegativeSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"negative width", -1, 10},
		{"negative height", 10, -1},
		{"both negative", -5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CanvasRegion(0, 0, tt.width, tt.height)
			if !errors.Is(err, ErrNegativeSize) {
				t.Errorf("got %v, want ErrNegativeSize", err)
			}
		})
	}
}

func TestCanvasRegion_ZeroSize(t *testing.T) {
	r, err := CanvasRegion(5, 5, 0, 0)
	if err != nil {
		t.Fatalf("zero size should be allowed: %v", err)
	}
	if r.Top != r.Bottom || r.Left != r.Right {
		t.Errorf("zero-size region should collapse: %+v", r)
	}
}

func TestAnchor_Empty(t *testing.T) {
	a := NewAnchor()
	if !a.Empty() {
		t.Error("new anchor should be empty")
	}
	p := a.Point()
	if !math.IsInf(p.X, 1) || !math.IsInf(p.Y, -1) {
		t.Errorf("empty anchor: got %v, want (+Inf, -Inf)", p)
	}
	if p.IsFinite() {
		t.Error("sentinel should not be finite")
	}
}

func TestAnchor_MinXMaxY(t *testing.T) {
	a := NewAnchor()
	a.Include(Pt(50, 10))
	a.Include(Pt(20, -40))
	a.Include(Pt(80, 30))

	if a.Empty() {
		t.Fatal("anchor should not be empty")
	}
	// Neither member sits at (20, 30).
	if a.Point() != Pt(20, 30) {
		t.Errorf("got %v, want (20, 30)", a.Point())
	}
}

func TestRegion_Translate(t *testing.T) {
	r := Region{Left: 0, Top: 0, Right: 10, Bottom: -10}
	got := r.Translate(Pt(5, -5))
	want := Region{Left: 5, Top: -5, Right: 15, Bottom: -15}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLowest(t *testing.T) {
	if _, ok := Lowest(nil); ok {
		t.Error("Lowest(nil) should report false")
	}

	regions := []Region{
		{Left: 100, Top: 0, Right: 200, Bottom: -300},
		{Left: -50, Top: 0, Right: 50, Bottom: -100},
	}
	p, ok := Lowest(regions)
	if !ok {
		t.Fatal("Lowest should report true")
	}
	if p != Pt(-50, -300) {
		t.Errorf("got %v, want (-50, -300)", p)
	}
}

func TestPoint_ApproxEqual(t *testing.T) {
	if !Pt(1, 1).ApproxEqual(Pt(1+1e-9, 1-1e-9), 1e-6) {
		t.Error("points within tolerance should be equal")
	}
	if Pt(1, 1).ApproxEqual(Pt(1.1, 1), 1e-6) {
		t.Error("points outside tolerance should differ")
	}
}
