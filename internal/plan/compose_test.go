package plan

import (
	"strings"
	"testing"
)

func testScene() Scene {
	boundary := testBoundary()
	inlines := []LineTrace{
		horizontalLine(KindInline, 50, 25),
		horizontalLine(KindInline, 100, 50),
		horizontalLine(KindInline, 130, 75),
	}
	xlines := []LineTrace{
		verticalLine(KindXline, 200, 30),
		verticalLine(KindXline, 250, 60),
	}
	return Scene{
		Inlines:   inlines,
		Xlines:    xlines,
		Boundary:  boundary,
		EdgeIndex: BuildEdgeIndex(boundary, inlines, xlines, 5),
	}
}

func TestComposeTraceAssembly(t *testing.T) {
	scene := testScene()
	cfg := DefaultComposeConfig()
	vp := Viewport{XMin: -100, XMax: 200, YMin: -100, YMax: 200}

	traces, _ := Compose(scene, vp, SelectionState{}, cfg)

	// 3 inlines + 2 crosslines + boundary.
	if len(traces) != 6 {
		t.Fatalf("expected 6 traces, got %d", len(traces))
	}

	boundary := traces[len(traces)-1]
	if boundary.Ref != nil {
		t.Error("boundary trace must carry no line reference")
	}
	if len(boundary.Points) != len(scene.Boundary)+1 {
		t.Fatalf("boundary ring should be closed: %d points, want %d",
			len(boundary.Points), len(scene.Boundary)+1)
	}
	if boundary.Points[0] != boundary.Points[len(boundary.Points)-1] {
		t.Error("boundary ring not closed with first vertex")
	}

	for _, trace := range traces[:len(traces)-1] {
		if trace.Ref == nil {
			t.Fatalf("grid trace %q missing line reference", trace.Name)
		}
		if trace.Name != trace.Ref.String() {
			t.Errorf("trace name %q does not match ref %q", trace.Name, trace.Ref)
		}
		if len(trace.HoverLabels) != len(trace.Points) {
			t.Errorf("trace %q: %d hover labels for %d points",
				trace.Name, len(trace.HoverLabels), len(trace.Points))
		}
	}
}

func TestComposeDensityAndHighlight(t *testing.T) {
	scene := testScene()
	cfg := DefaultComposeConfig()
	cfg.Density = 50 // keeps inlines 50, 100 and crosslines 200, 250
	vp := Viewport{XMin: 0, XMax: 100, YMin: 0, YMax: 100}

	var sel SelectionState
	sel.Click(LineRef{Kind: KindXline, ID: 250})
	sel.Hover(LineRef{Kind: KindInline, ID: 100})

	traces, _ := Compose(scene, vp, sel, cfg)
	if len(traces) != 5 { // 2 + 2 + boundary
		t.Fatalf("expected 5 traces after density filtering, got %d", len(traces))
	}

	styles := map[string]LineStyle{}
	for _, trace := range traces {
		styles[trace.Name] = trace.Style
	}

	if _, ok := styles["INLINE 130"]; ok {
		t.Error("inline 130 should be density-filtered out")
	}
	if s := styles["XLINE 250"]; s.Color != cfg.Palette.SelectedColor || s.Width != cfg.Palette.SelectedWidth {
		t.Errorf("selected crossline styled %+v", s)
	}
	if s := styles["INLINE 100"]; s.Color != cfg.Palette.HoveredColor {
		t.Errorf("hovered inline styled %+v", s)
	}
	if s := styles["INLINE 50"]; s.Color != cfg.Palette.InlineColor || s.Width != cfg.Palette.DefaultWidth {
		t.Errorf("plain inline styled %+v", s)
	}
}

func TestComposeAnnotationOrder(t *testing.T) {
	scene := testScene()
	cfg := DefaultComposeConfig()
	vp := Viewport{XMin: 0, XMax: 1000, YMin: 0, YMax: 500}

	_, annotations := Compose(scene, vp, SelectionState{}, cfg)
	if len(annotations) == 0 {
		t.Fatal("expected annotations")
	}

	// Compass first, then ticks and captions, then edge labels last.
	if annotations[0].Text != "N ↑" || !annotations[0].Paper {
		t.Errorf("first annotation = %+v, want paper-space compass marker", annotations[0])
	}

	firstLabel := -1
	lastTick := -1
	for i, a := range annotations[1:] {
		isLabel := strings.HasPrefix(a.Text, "INLINE") || strings.HasPrefix(a.Text, "XLINE")
		if isLabel && firstLabel == -1 {
			firstLabel = i + 1
		}
		if !isLabel {
			lastTick = i + 1
		}
	}
	if firstLabel == -1 {
		t.Fatal("expected edge labels in composed output")
	}
	if lastTick > firstLabel {
		t.Errorf("tick annotation at %d after first edge label at %d", lastTick, firstLabel)
	}
}

func TestComposeWithoutCompass(t *testing.T) {
	scene := testScene()
	cfg := DefaultComposeConfig()
	cfg.ShowCompass = false

	_, annotations := Compose(scene, Viewport{XMin: 0, XMax: 100, YMin: 0, YMax: 100}, SelectionState{}, cfg)
	for _, a := range annotations {
		if a.Text == "N ↑" {
			t.Fatal("compass marker emitted while disabled")
		}
	}
}

func TestComposeCornerLabelMode(t *testing.T) {
	scene := testScene()
	scene.IlineCoords = []int{1189, 1189, 1450, 1450}
	scene.XlineCoords = []int{1334, 1800, 1800, 1334}
	cfg := DefaultComposeConfig()
	cfg.CornerLabels = true

	_, annotations := Compose(scene, Viewport{XMin: 0, XMax: 100, YMin: 0, YMax: 100}, SelectionState{}, cfg)

	var cornerLabels int
	for _, a := range annotations {
		if strings.Contains(a.Text, "1189") || strings.Contains(a.Text, "1450") ||
			strings.Contains(a.Text, "1334") || strings.Contains(a.Text, "1800") {
			cornerLabels++
		}
	}
	if cornerLabels != 8 {
		t.Errorf("expected 8 corner labels, got %d", cornerLabels)
	}
}

func TestComposeEmptyScene(t *testing.T) {
	traces, annotations := Compose(Scene{}, Viewport{}, SelectionState{}, DefaultComposeConfig())
	if len(traces) != 0 {
		t.Errorf("empty scene produced %d traces", len(traces))
	}
	// Degenerate viewport and empty boundary: only the compass remains.
	if len(annotations) != 1 {
		t.Errorf("empty scene produced %d annotations, want compass only", len(annotations))
	}
}

func TestComposeIsPure(t *testing.T) {
	scene := testScene()
	cfg := DefaultComposeConfig()
	vp := Viewport{XMin: 0, XMax: 1000, YMin: 0, YMax: 500}
	var sel SelectionState
	sel.Click(LineRef{Kind: KindInline, ID: 100})

	t1, a1 := Compose(scene, vp, sel, cfg)
	t2, a2 := Compose(scene, vp, sel, cfg)

	if len(t1) != len(t2) || len(a1) != len(a2) {
		t.Fatal("recompute produced different output sizes")
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("annotation %d differs between recomputes", i)
		}
	}
	for i := range t1 {
		if t1[i].Name != t2[i].Name || t1[i].Style != t2[i].Style {
			t.Errorf("trace %d differs between recomputes", i)
		}
	}
}
