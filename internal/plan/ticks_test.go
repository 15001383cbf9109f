package plan

import (
	"math"
	"strconv"
	"testing"
)

// splitTicks separates data-space tick annotations from paper-space captions.
func splitTicks(annotations []Annotation) (ticks, captions []Annotation) {
	for _, a := range annotations {
		if a.Paper {
			captions = append(captions, a)
		} else {
			ticks = append(ticks, a)
		}
	}
	return ticks, captions
}

func TestPlanViewportTicksScenario(t *testing.T) {
	// xSpan=1000 dominates: floor(1000/100) = 10, clamped to 8 ticks.
	vp := Viewport{XMin: 0, XMax: 1000, YMin: 0, YMax: 500}

	ticks, captions := splitTicks(PlanViewportTicks(vp))

	if len(captions) != 4 {
		t.Fatalf("expected 4 axis captions, got %d", len(captions))
	}

	// 8 X values mirrored top+bottom, 8 Y values mirrored left+right. All
	// rounded values stay in range for this viewport.
	var topX, bottomX, leftY, rightY int
	for _, a := range ticks {
		switch {
		case a.Y == vp.YMax && a.X != vp.XMin && a.X != vp.XMax:
			topX++
		case a.Y == vp.YMin && a.X != vp.XMin && a.X != vp.XMax:
			bottomX++
		case a.X == vp.XMin:
			leftY++
		case a.X == vp.XMax:
			rightY++
		}
	}
	// X ticks at the exact range ends coincide with Y tick columns; count
	// totals instead of relying on disjoint positions.
	if got := len(ticks); got != 32 {
		t.Errorf("expected 32 tick annotations (8 values x 2 sides x 2 axes), got %d", got)
	}
}

func TestPlanViewportTicksValuesRoundedToTen(t *testing.T) {
	vp := Viewport{XMin: 3, XMax: 997, YMin: 11, YMax: 489}

	ticks, _ := splitTicks(PlanViewportTicks(vp))
	for _, a := range ticks {
		v, err := strconv.ParseFloat(a.Text, 64)
		if err != nil {
			t.Fatalf("tick text %q is not numeric: %v", a.Text, err)
		}
		if math.Mod(v, 10) != 0 {
			t.Errorf("tick value %v not rounded to nearest 10", v)
		}
	}
}

func TestPlanViewportTicksStayInRange(t *testing.T) {
	viewports := []Viewport{
		{XMin: 0, XMax: 1000, YMin: 0, YMax: 500},
		{XMin: -3, XMax: 212, YMin: 4, YMax: 96},
		{XMin: 731212.7, XMax: 739004.1, YMin: 4926370.2, YMax: 4936512.9},
		{XMin: 0.4, XMax: 301.2, YMin: -150.9, YMax: 149.3},
	}

	for _, vp := range viewports {
		ticks, _ := splitTicks(PlanViewportTicks(vp))
		for _, a := range ticks {
			v, _ := strconv.ParseFloat(a.Text, 64)
			onX := a.Y == vp.YMin || a.Y == vp.YMax
			if onX && a.X == v {
				if v < vp.XMin || v > vp.XMax {
					t.Errorf("viewport %+v: X tick %v outside range", vp, v)
				}
			}
			if a.X == vp.XMin || a.X == vp.XMax {
				if a.Y < vp.YMin || a.Y > vp.YMax {
					t.Errorf("viewport %+v: Y tick at %v outside range", vp, a.Y)
				}
			}
		}
	}
}

func TestTickCountClamped(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want int
	}{
		{"tiny span clamps low", Viewport{0, 50, 0, 50}, 3},
		{"310 units", Viewport{0, 310, 0, 100}, 3},
		{"500 units", Viewport{0, 500, 0, 100}, 5},
		{"exactly 800", Viewport{0, 800, 0, 100}, 8},
		{"huge span clamps high", Viewport{0, 1e6, 0, 1e6}, 8},
		{"y span dominates", Viewport{0, 100, 0, 650}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tickCount(tt.vp); got != tt.want {
				t.Errorf("tickCount(%+v) = %d, want %d", tt.vp, got, tt.want)
			}
		})
	}
}

func TestPlanViewportTicksMalformed(t *testing.T) {
	malformed := []Viewport{
		{},                                    // zero value, degenerate
		{XMin: 10, XMax: 10, YMin: 0, YMax: 5}, // zero x span
		{XMin: 10, XMax: 0, YMin: 0, YMax: 5},  // inverted x
		{XMin: 0, XMax: 5, YMin: 9, YMax: 2},   // inverted y
		{XMin: math.NaN(), XMax: 5, YMin: 0, YMax: 2},
		{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 2},
	}

	for _, vp := range malformed {
		if got := PlanViewportTicks(vp); len(got) != 0 {
			t.Errorf("viewport %+v: expected empty output, got %d annotations", vp, len(got))
		}
	}
}

func TestAxisCaptions(t *testing.T) {
	_, captions := splitTicks(PlanViewportTicks(Viewport{XMin: 0, XMax: 100, YMin: 0, YMax: 100}))
	if len(captions) != 4 {
		t.Fatalf("expected 4 captions, got %d", len(captions))
	}

	var xCaptions, rotated int
	for _, c := range captions {
		if c.Text == "X Coordinate" {
			xCaptions++
			if c.Style.Angle != 0 {
				t.Errorf("X caption should not be rotated, angle=%f", c.Style.Angle)
			}
		}
		if c.Text == "Y Coordinate" {
			if c.Style.Angle == 0 {
				t.Error("Y captions should be rotated")
			}
			rotated++
		}
	}
	if xCaptions != 2 || rotated != 2 {
		t.Errorf("expected 2 X and 2 rotated Y captions, got %d and %d", xCaptions, rotated)
	}
}
