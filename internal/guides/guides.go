package guides

import (
	"math"

	"github.com/hierarchyplus/hierarchy-plus/internal/layout"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// Indent geometry of the host tree
const (
	IndentWidth float32 = 14
	// GutterPadding is added to the indent of every row
	GutterPadding float32 = 34
	// FoldoutMargin is kept free for the foldout arrow of rows with children
	FoldoutMargin float32 = 14
	// LeafMargin is kept free left of leaf rows
	LeafMargin float32 = 2
	// LeafExtension lengthens the horizontal stub of leaf rows
	LeafExtension float32 = 12
	// StubInset is the distance between the stub end and the margin
	StubInset float32 = 8
	// BandInset shifts the colour band right of the gutter start
	BandInset float32 = 5
	// BandOverhang extends the colour band past the row
	BandOverhang float32 = 12
)

// Geometry is the tree position of one row
type Geometry struct {
	Depth int
	// Continuations holds one flag per ancestor level, ordered root to self.
	// Flag i is set when the level i+1 ancestor (the row itself for the last
	// flag) has later siblings, so its parent's vertical line continues down.
	Continuations []bool
	IsLastChild   bool
	HasChildren   bool
	HasParent     bool
}

// Compute walks the item's ancestry
func Compute(it *model.Item) Geometry {
	g := Geometry{
		HasParent:   it.Parent != nil,
		IsLastChild: it.IsLastChild(),
		HasChildren: it.HasChildren(),
	}

	for t := it; t.Parent != nil; t = t.Parent {
		g.Depth++
	}

	g.Continuations = make([]bool, g.Depth)
	i := g.Depth - 1
	for t := it; t.Parent != nil; t = t.Parent {
		g.Continuations[i] = !t.IsLastChild()
		i--
	}
	return g
}

// Parity of a row for alternate colouring
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// ParityOf classifies a row by its y position in scroll content coordinates,
// so a row keeps its band while the view scrolls. A row is odd when its
// position modulo two row heights exceeds rowHeight-1.
func ParityOf(y, rowHeight float32) Parity {
	if rowHeight <= 0 {
		return Even
	}
	period := float64(2 * rowHeight)
	m := math.Mod(float64(y), period)
	if m < 0 {
		m += period
	}
	if m > float64(rowHeight-1) {
		return Odd
	}
	return Even
}

// Segment is a straight guide line in the coordinates of the row it belongs to
type Segment struct {
	X1, Y1, X2, Y2 float32
}

// PaintOptions selects what Paint produces
type PaintOptions struct {
	GuideLines bool
}

// Painting is what a row draws in its gutter
type Painting struct {
	Gutter layout.Rect
	Band   layout.Rect
	Parity Parity
	Lines  []Segment
}

// Paint computes the gutter, colour band and guide line segments of a row.
// Lines are only produced for rows with a parent.
func Paint(row layout.Rect, g Geometry, opts PaintOptions) Painting {
	margin := LeafMargin
	if g.HasChildren {
		margin = FoldoutMargin
	}
	lineWidth := IndentWidth*float32(g.Depth) + GutterPadding
	gutter := layout.Rect{X: row.X - lineWidth, Y: row.Y, W: lineWidth - margin, H: row.H}

	band := gutter
	band.X += BandInset
	band.W += row.W + margin + BandOverhang

	p := Painting{
		Gutter: gutter,
		Band:   band,
		Parity: ParityOf(band.Y, row.H),
	}

	if !g.HasParent || !opts.GuideLines {
		return p
	}

	extra := LeafExtension
	if g.HasChildren {
		extra = 0
	}
	midY := row.Y + row.H/2
	stubStart := gutter.XMax()
	stubEnd := stubStart - extra - StubInset
	p.Lines = append(p.Lines, Segment{stubStart, midY, stubEnd, midY})

	if g.IsLastChild {
		p.Lines = append(p.Lines, Segment{stubEnd, midY, stubEnd, row.Y})
	}

	for i, cont := range g.Continuations {
		if !cont {
			continue
		}
		x := ContinuationX(row.X, g.Depth, i)
		p.Lines = append(p.Lines, Segment{x, row.Y, x, row.YMax()})
	}
	return p
}

// ContinuationX returns the x of the vertical line for ancestor level i of a
// row at depth. It lines up with the stub ends of the rows at depth i+1.
func ContinuationX(rowX float32, depth, level int) float32 {
	return rowX - IndentWidth*float32(depth-level) - StubInset
}
