package gridmap

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// The dataset decoders accept the JSON payloads produced by survey data
// services: a grid document with per-line vertex and hover arrays, a
// boundary document with the corner ring and line coordinate tables, and
// an edge index document keyed by boundary edge position.

type wireLine struct {
	Inline    *int        `json:"inline"`
	Xline     *int        `json:"xline"`
	Points    [][]float64 `json:"points"`
	HoverInfo []string    `json:"hover_info"`
}

type wireGrid struct {
	Inlines      []wireLine `json:"inlines"`
	Xlines       []wireLine `json:"xlines"`
	TotalInlines int        `json:"total_inlines"`
	TotalXlines  int        `json:"total_xlines"`
}

type wireBoundary struct {
	Boundary   [][]float64 `json:"boundary"`
	IlineCood  []int       `json:"iline_cood"`
	XlineCood  []int       `json:"xline_cood"`
	AllInlines []int       `json:"all_inlines"`
	AllXlines  []int       `json:"all_xlines"`
}

type wireEdgeEntry struct {
	Inlines []int `json:"inlines"`
	Xlines  []int `json:"xlines"`
}

// DecodeGrid reads a grid dataset document. Lines with fewer than two
// vertices are dropped; a hover array whose length disagrees with the
// vertex count is a document error.
func DecodeGrid(r io.Reader) (*Grid, error) {
	var doc wireGrid
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode grid document: %w", err)
	}

	grid := &Grid{}
	for i, wl := range doc.Inlines {
		if wl.Inline == nil {
			return nil, fmt.Errorf("decode grid document: inlines[%d]: missing inline id", i)
		}
		line, ok, err := decodeLine(*wl.Inline, wl)
		if err != nil {
			return nil, fmt.Errorf("decode grid document: inline %d: %w", *wl.Inline, err)
		}
		if ok {
			grid.Inlines = append(grid.Inlines, line)
		}
	}
	for i, wl := range doc.Xlines {
		if wl.Xline == nil {
			return nil, fmt.Errorf("decode grid document: xlines[%d]: missing xline id", i)
		}
		line, ok, err := decodeLine(*wl.Xline, wl)
		if err != nil {
			return nil, fmt.Errorf("decode grid document: xline %d: %w", *wl.Xline, err)
		}
		if ok {
			grid.Xlines = append(grid.Xlines, line)
		}
	}
	return grid, nil
}

func decodeLine(id int, wl wireLine) (Line, bool, error) {
	if len(wl.HoverInfo) > 0 && len(wl.HoverInfo) != len(wl.Points) {
		return Line{}, false, fmt.Errorf("hover_info has %d entries for %d points", len(wl.HoverInfo), len(wl.Points))
	}
	points, err := decodePoints(wl.Points)
	if err != nil {
		return Line{}, false, err
	}
	if len(points) < 2 {
		return Line{}, false, nil
	}
	return Line{ID: id, Points: points, HoverLabels: wl.HoverInfo}, true, nil
}

// DecodeBoundary reads a boundary dataset document. A closing vertex that
// duplicates the first is dropped so the ring is stored open.
func DecodeBoundary(r io.Reader) (*Boundary, error) {
	var doc wireBoundary
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode boundary document: %w", err)
	}

	ring, err := decodePoints(doc.Boundary)
	if err != nil {
		return nil, fmt.Errorf("decode boundary document: %w", err)
	}
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}

	return &Boundary{
		Ring:        ring,
		IlineCoords: doc.IlineCood,
		XlineCoords: doc.XlineCood,
		AllInlines:  doc.AllInlines,
		AllXlines:   doc.AllXlines,
	}, nil
}

// DecodeEdgeIndex reads an edge index document, an object keyed by the
// string form of the edge position ("0" through "3"). Entry position in the
// result always equals the edge position; edges absent from the document
// come back as empty entries.
func DecodeEdgeIndex(r io.Reader) ([]EdgeEntry, error) {
	var doc map[string]wireEdgeEntry
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode edge index document: %w", err)
	}

	maxKey := -1
	for k := range doc {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("decode edge index document: edge key %q is not a valid edge position", k)
		}
		if n > maxKey {
			maxKey = n
		}
	}
	if maxKey < 0 {
		return nil, nil
	}

	entries := make([]EdgeEntry, maxKey+1)
	for i := range entries {
		we := doc[strconv.Itoa(i)]
		entries[i] = EdgeEntry{Inlines: we.Inlines, Xlines: we.Xlines}
	}
	return entries, nil
}

func decodePoints(raw [][]float64) ([]Point, error) {
	points := make([]Point, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 2", i, len(pair))
		}
		points = append(points, Point{X: pair[0], Y: pair[1]})
	}
	return points, nil
}
