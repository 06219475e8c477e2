// Package layout maps canvas-space text positions onto the physical
// page. Canvas space is pixel-based with the origin at the canvas
// center and y increasing upward; page space is inch-based with the
// origin at the top-left and y increasing downward.
package layout

import "github.com/youruser/cardpress/internal/cards"

// Unit conversion and page constants.
const (
	PointsPerInch = 72.0
	PixelsPerInch = 96.0

	// A4 portrait.
	PageWidthInches  = 8.27
	PageHeightInches = 11.69

	// Cards per page in a 2x2 grid.
	CardsPerPage = 4
)

// Rect is an axis-aligned rectangle in page space, inches.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Offset returns the rect translated by (dx, dy) inches.
func (r Rect) Offset(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Point is a position in page space, inches.
type Point struct {
	X float64
	Y float64
}

// CardWidthInches returns the width of one quadrant.
func CardWidthInches() float64 { return PageWidthInches / 2 }

// CardHeightInches returns the height of one quadrant.
func CardHeightInches() float64 { return PageHeightInches / 2 }

// CardAspectRatio returns the width/height ratio of one quadrant.
func CardAspectRatio() float64 { return CardWidthInches() / CardHeightInches() }

// QuadrantOrigins returns the top-left corner of each card slot in the
// order top-left, top-right, bottom-left, bottom-right.
func QuadrantOrigins() [CardsPerPage]Point {
	w, h := CardWidthInches(), CardHeightInches()
	return [CardsPerPage]Point{
		{0, 0},
		{w, 0},
		{0, h},
		{w, h},
	}
}

// CardRect returns the full rect of the slot-th quadrant.
func CardRect(slot int) Rect {
	origin := QuadrantOrigins()[slot]
	return Rect{Left: origin.X, Top: origin.Y, Width: CardWidthInches(), Height: CardHeightInches()}
}

// Geometry holds the tunable constants of the canvas-to-page mapping.
// The correction factors and the fixed downward shift were calibrated
// against the reference client's canvas renderer; they scale the raw
// center offset before projection.
type Geometry struct {
	HorizontalCorrection float64
	VerticalCorrection   float64
	VerticalOffsetPt     float64
	BoxWidthFraction     float64
	BoxHeightFactor      float64
}

// DefaultGeometry returns the calibrated mapping constants.
func DefaultGeometry() Geometry {
	return Geometry{
		HorizontalCorrection: 0.9,
		VerticalCorrection:   0.93,
		VerticalOffsetPt:     3.5,
		BoxWidthFraction:     0.90,
		BoxHeightFactor:      1.1,
	}
}

// TextBoxRect computes the quadrant-relative text box for one item.
// The canvas maps 1:1 onto a quadrant using independent per-axis
// pixel-per-inch ratios, so the result must still be offset by the
// quadrant origin before placement.
func (g Geometry) TextBoxRect(item cards.TextItem, canvas cards.CanvasSize) Rect {
	pxPerInchW := canvas.Width / CardWidthInches()
	pxPerInchH := canvas.Height / CardHeightInches()

	correctedDx := item.CenterPosition.Dx * g.HorizontalCorrection
	correctedDy := item.CenterPosition.Dy * g.VerticalCorrection
	offsetPx := g.VerticalOffsetPt * (PixelsPerInch / PointsPerInch)

	// Canvas-space dy points up; page-space y points down.
	centerXPx := canvas.Width/2 + correctedDx
	centerYPx := canvas.Height/2 - correctedDy + offsetPx

	boxWidthPx := canvas.Width * g.BoxWidthFraction
	boxHeightPx := item.MeasuredHeight() * (PixelsPerInch / PointsPerInch) * g.BoxHeightFactor

	return Rect{
		Left:   (centerXPx - boxWidthPx/2) / pxPerInchW,
		Top:    (centerYPx - boxHeightPx/2) / pxPerInchH,
		Width:  boxWidthPx / pxPerInchW,
		Height: boxHeightPx / pxPerInchH,
	}
}
