package plan

// SelectionState tracks which grid line is selected and which is hovered.
//
// Selection persists across hover changes and is replaced wholesale by each
// click or external select request. Hover is transient: set and cleared
// purely by pointer enter/leave, never persisted, and it never alters the
// selection. The zero value is the initial state (nothing selected, nothing
// hovered).
type SelectionState struct {
	Selected *LineRef
	Hovered  *LineRef
}

// Click selects a line. Clicking while another line is selected switches the
// selection without confirmation.
func (s *SelectionState) Click(ref LineRef) {
	r := ref
	s.Selected = &r
}

// ExternalSelect applies a selection request from a linked external view.
// It behaves exactly like a click.
func (s *SelectionState) ExternalSelect(ref LineRef) {
	s.Click(ref)
}

// Clear drops the selection, returning to the idle state.
func (s *SelectionState) Clear() {
	s.Selected = nil
}

// Hover marks a line as hovered, independent of selection state.
func (s *SelectionState) Hover(ref LineRef) {
	r := ref
	s.Hovered = &r
}

// Unhover clears the transient hover flag.
func (s *SelectionState) Unhover() {
	s.Hovered = nil
}

// StyleFor derives the rendering style for one line. Precedence, high to
// low: selected, hovered, kind default. Exactly one level applies; selected
// and hovered styling are never combined.
func (s *SelectionState) StyleFor(ref LineRef, pal StylePalette) LineStyle {
	if s.Selected != nil && *s.Selected == ref {
		return LineStyle{Color: pal.SelectedColor, Width: pal.SelectedWidth}
	}
	if s.Hovered != nil && *s.Hovered == ref {
		return LineStyle{Color: pal.HoveredColor, Width: pal.HoveredWidth}
	}
	color := pal.InlineColor
	if ref.Kind == KindXline {
		color = pal.XlineColor
	}
	return LineStyle{Color: color, Width: pal.DefaultWidth}
}
