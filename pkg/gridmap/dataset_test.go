package gridmap

import (
	"strings"
	"testing"
)

func TestDecodeGrid(t *testing.T) {
	doc := `{
		"inlines": [
			{"inline": 100, "points": [[0, 200], [2000, 200]], "hover_info": ["a", "b"]},
			{"inline": 110, "points": [[0, 400], [2000, 400]]}
		],
		"xlines": [
			{"xline": 250, "points": [[500, 0], [500, 1000]]}
		],
		"total_inlines": 2,
		"total_xlines": 1
	}`

	grid, err := DecodeGrid(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeGrid returned error: %v", err)
	}
	if len(grid.Inlines) != 2 || len(grid.Xlines) != 1 {
		t.Fatalf("got %d inlines, %d xlines; want 2, 1", len(grid.Inlines), len(grid.Xlines))
	}
	if grid.Inlines[0].ID != 100 || grid.Inlines[1].ID != 110 {
		t.Errorf("inline ids = %d, %d; want 100, 110", grid.Inlines[0].ID, grid.Inlines[1].ID)
	}
	if got := grid.Inlines[0].HoverLabels; len(got) != 2 || got[0] != "a" {
		t.Errorf("inline 100 hover labels = %v", got)
	}
	if grid.Xlines[0].Points[1] != (Point{X: 500, Y: 1000}) {
		t.Errorf("xline 250 endpoint = %v", grid.Xlines[0].Points[1])
	}
}

func TestDecodeGridDropsShortLines(t *testing.T) {
	doc := `{
		"inlines": [
			{"inline": 100, "points": [[0, 200]]},
			{"inline": 110, "points": [[0, 400], [2000, 400]]}
		],
		"xlines": []
	}`

	grid, err := DecodeGrid(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeGrid returned error: %v", err)
	}
	if len(grid.Inlines) != 1 || grid.Inlines[0].ID != 110 {
		t.Errorf("inlines = %+v, want only inline 110", grid.Inlines)
	}
}

func TestDecodeGridRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"inlines": [`},
		{"missing id", `{"inlines": [{"points": [[0, 0], [1, 1]]}]}`},
		{"hover length mismatch", `{"inlines": [{"inline": 1, "points": [[0, 0], [1, 1]], "hover_info": ["only one"]}]}`},
		{"bad coordinate pair", `{"xlines": [{"xline": 2, "points": [[0, 0, 0], [1, 1]]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeGrid(strings.NewReader(tt.doc)); err == nil {
				t.Error("DecodeGrid returned nil error")
			}
		})
	}
}

func TestDecodeBoundary(t *testing.T) {
	doc := `{
		"boundary": [[0, 0], [2000, 0], [2000, 1000], [0, 1000], [0, 0]],
		"iline_cood": [100, 100, 130, 130],
		"xline_cood": [240, 260, 260, 240],
		"all_inlines": [100, 110, 120, 130],
		"all_xlines": [240, 250, 260]
	}`

	b, err := DecodeBoundary(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBoundary returned error: %v", err)
	}

	// The closing duplicate vertex is dropped; the ring is stored open.
	if len(b.Ring) != 4 {
		t.Fatalf("ring has %d vertices, want 4", len(b.Ring))
	}
	if b.Ring[3] != (Point{X: 0, Y: 1000}) {
		t.Errorf("last ring vertex = %v, want (0, 1000)", b.Ring[3])
	}
	// Corner identifier arrays are integer line numbers.
	if !equalInts(b.IlineCoords, []int{100, 100, 130, 130}) {
		t.Errorf("IlineCoords = %v, want [100 100 130 130]", b.IlineCoords)
	}
	if !equalInts(b.XlineCoords, []int{240, 260, 260, 240}) {
		t.Errorf("XlineCoords = %v, want [240 260 260 240]", b.XlineCoords)
	}
	if len(b.AllXlines) != 3 {
		t.Errorf("AllXlines = %v", b.AllXlines)
	}
}

func TestDecodeBoundaryOpenRingKeptAsIs(t *testing.T) {
	doc := `{"boundary": [[0, 0], [10, 0], [10, 10], [0, 10]]}`

	b, err := DecodeBoundary(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBoundary returned error: %v", err)
	}
	if len(b.Ring) != 4 {
		t.Errorf("ring has %d vertices, want 4", len(b.Ring))
	}
}

func TestDecodeEdgeIndex(t *testing.T) {
	doc := `{
		"2": {"inlines": [], "xlines": [240, 250, 260]},
		"0": {"inlines": [], "xlines": [240, 250, 260]},
		"1": {"inlines": [100, 110], "xlines": []},
		"3": {"inlines": [100, 110], "xlines": []}
	}`

	entries, err := DecodeEdgeIndex(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeEdgeIndex returned error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	// Entries come back in edge order regardless of document key order.
	if !equalInts(entries[0].Xlines, []int{240, 250, 260}) {
		t.Errorf("entry 0 xlines = %v", entries[0].Xlines)
	}
	if !equalInts(entries[1].Inlines, []int{100, 110}) {
		t.Errorf("entry 1 inlines = %v", entries[1].Inlines)
	}
}

func TestDecodeEdgeIndexKeepsEdgePositions(t *testing.T) {
	// Edge 1 is missing from the document; its slot must stay empty instead
	// of later edges shifting down.
	doc := `{
		"0": {"inlines": [], "xlines": [240]},
		"2": {"inlines": [], "xlines": [250]},
		"3": {"inlines": [100], "xlines": []}
	}`

	entries, err := DecodeEdgeIndex(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeEdgeIndex returned error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	if len(entries[1].Inlines) != 0 || len(entries[1].Xlines) != 0 {
		t.Errorf("entry 1 = %+v, want empty for a missing edge", entries[1])
	}
	if !equalInts(entries[2].Xlines, []int{250}) {
		t.Errorf("entry 2 xlines = %v, want [250]", entries[2].Xlines)
	}
	if !equalInts(entries[3].Inlines, []int{100}) {
		t.Errorf("entry 3 inlines = %v, want [100]", entries[3].Inlines)
	}
}

func TestDecodeEdgeIndexRejectsNonNumericKeys(t *testing.T) {
	doc := `{"north": {"inlines": [], "xlines": []}}`
	if _, err := DecodeEdgeIndex(strings.NewReader(doc)); err == nil {
		t.Error("DecodeEdgeIndex returned nil error for a non-numeric key")
	}
}
