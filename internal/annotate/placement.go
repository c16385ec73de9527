package annotate

// Rect is an element box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

type Size struct {
	Width, Height float64
}

// Placement positions a popover relative to its anchor. OffsetX shifts the
// popover horizontally from being centered on the anchor.
type Placement struct {
	Above   bool
	OffsetX float64
}

const (
	viewportMargin = 10
	aboveClearance = 20
)

// Place keeps a popover inside the viewport: it opens above the anchor when
// there is room for it plus a clearance, below otherwise, and is shifted
// horizontally so it stays viewportMargin away from either edge.
func Place(anchor Rect, popover Size, viewport Size) Placement {
	center := anchor.Left + anchor.Width/2
	half := popover.Width / 2

	var overflow float64
	switch {
	case center-half < viewportMargin:
		overflow = center - half - viewportMargin
	case center+half > viewport.Width-viewportMargin:
		overflow = center + half - (viewport.Width - viewportMargin)
	}

	return Placement{
		Above:   anchor.Top > popover.Height+aboveClearance,
		OffsetX: -overflow,
	}
}
