package guides

import (
	"testing"

	"github.com/hierarchyplus/hierarchy-plus/internal/layout"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// buildTree returns root > {a > {grand > {p > {leaf}}, other}}, where grand
// has a later sibling and p and leaf are last children.
func buildTree() (leaf *model.Item) {
	root := model.NewItem("root", "Root")
	a := model.NewItem("a", "A")
	grand := model.NewItem("grand", "Grand")
	other := model.NewItem("other", "Other")
	p := model.NewItem("p", "Parent")
	leaf = model.NewItem("leaf", "Leaf")

	root.AddChild(a)
	a.AddChild(grand)
	a.AddChild(other)
	grand.AddChild(p)
	p.AddChild(leaf)
	return leaf
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComputeContinuations(t *testing.T) {
	leaf := buildTree()
	p := leaf.Parent
	grand := p.Parent

	tests := []struct {
		name      string
		item      *model.Item
		wantDepth int
		wantFlags []bool
	}{
		{"root", grand.Parent.Parent, 0, []bool{}},
		{"grand", grand, 2, []bool{false, true}},
		{"parent", p, 3, []bool{false, true, false}},
		{"leaf", leaf, 4, []bool{false, true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.item)
			if g.Depth != tt.wantDepth {
				t.Errorf("Expected depth %d, got %d", tt.wantDepth, g.Depth)
			}
			if !equalBools(g.Continuations, tt.wantFlags) {
				t.Errorf("Expected flags %v, got %v", tt.wantFlags, g.Continuations)
			}
		})
	}
}

func TestComputeDepthThree(t *testing.T) {
	// grandparent has a later sibling, parent is a last child
	grand := model.NewItem("g", "G")
	root := model.NewItem("r", "R")
	root.AddChild(grand)
	root.AddChild(model.NewItem("s", "S"))
	parent := model.NewItem("p", "P")
	grand.AddChild(parent)
	item := model.NewItem("i", "I")
	parent.AddChild(item)

	g := Compute(item)
	want := []bool{true, false, false}
	if !equalBools(g.Continuations, want) {
		t.Errorf("Expected %v, got %v", want, g.Continuations)
	}
	if !g.IsLastChild || !g.HasParent || g.HasChildren {
		t.Errorf("Unexpected flags %+v", g)
	}
}

func TestParityOf(t *testing.T) {
	tests := []struct {
		y    float32
		want Parity
	}{
		{0, Even},
		{15, Even},
		{15.5, Odd},
		{16, Odd},
		{31, Odd},
		{32, Even},
		{48, Odd},
		{-16, Odd},
		{-32, Even},
	}

	for _, tt := range tests {
		if got := ParityOf(tt.y, 16); got != tt.want {
			t.Errorf("ParityOf(%v): expected %v, got %v", tt.y, tt.want, got)
		}
	}
}

func TestParityAlternates(t *testing.T) {
	prev := ParityOf(0, 20)
	for i := 1; i < 10; i++ {
		cur := ParityOf(float32(i*20), 20)
		if cur == prev {
			t.Fatalf("Expected row %d to alternate parity", i)
		}
		prev = cur
	}
}

func TestPaintRootHasNoLines(t *testing.T) {
	root := model.NewItem("r", "R")
	p := Paint(layout.Rect{X: 40, Y: 0, W: 200, H: 16}, Compute(root), PaintOptions{GuideLines: true})
	if len(p.Lines) != 0 {
		t.Errorf("Expected no lines for a root row, got %d", len(p.Lines))
	}
	if p.Gutter.X != 40-34 || p.Gutter.W != 32 {
		t.Errorf("Unexpected gutter %+v", p.Gutter)
	}
}

func TestPaintLastChild(t *testing.T) {
	leaf := buildTree()
	row := layout.Rect{X: 100, Y: 32, W: 200, H: 16}
	p := Paint(row, Compute(leaf), PaintOptions{GuideLines: true})

	// stub, last child half line, one continuation
	if len(p.Lines) != 3 {
		t.Fatalf("Expected 3 segments, got %d: %+v", len(p.Lines), p.Lines)
	}

	stub := p.Lines[0]
	if stub.X1 != 98 || stub.X2 != 78 || stub.Y1 != 40 || stub.Y2 != 40 {
		t.Errorf("Unexpected stub %+v", stub)
	}

	half := p.Lines[1]
	if half.X1 != 78 || half.X2 != 78 || half.Y1 != 40 || half.Y2 != 32 {
		t.Errorf("Unexpected last child line %+v", half)
	}

	cont := p.Lines[2]
	wantX := ContinuationX(100, 4, 1)
	if cont.X1 != wantX || cont.Y1 != 32 || cont.Y2 != 48 {
		t.Errorf("Unexpected continuation %+v", cont)
	}
}

func TestPaintStubEndsAlign(t *testing.T) {
	// a row with children and a leaf row at the same depth share the stub end
	parent := model.NewItem("p", "P")
	withChildren := model.NewItem("c1", "C1")
	leaf := model.NewItem("c2", "C2")
	parent.AddChild(withChildren)
	parent.AddChild(leaf)
	withChildren.AddChild(model.NewItem("gc", "GC"))

	row := layout.Rect{X: 60, H: 16, W: 100}
	a := Paint(row, Compute(withChildren), PaintOptions{GuideLines: true})
	b := Paint(row, Compute(leaf), PaintOptions{GuideLines: true})

	if a.Lines[0].X2 != b.Lines[0].X2 {
		t.Errorf("Expected stub ends to align, got %v and %v", a.Lines[0].X2, b.Lines[0].X2)
	}
	if a.Lines[0].X1 != 46 || b.Lines[0].X1 != 58 {
		t.Errorf("Unexpected stub starts %v %v", a.Lines[0].X1, b.Lines[0].X1)
	}

	// the first child is not last, so its own level continues through the row
	found := false
	for _, s := range a.Lines[1:] {
		if s.X1 == a.Lines[0].X2 && s.Y1 == 0 && s.Y2 == 16 {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a full vertical at the stub end, got %+v", a.Lines)
	}
}

func TestPaintLinesDisabled(t *testing.T) {
	leaf := buildTree()
	p := Paint(layout.Rect{X: 100, W: 100, H: 16}, Compute(leaf), PaintOptions{})
	if len(p.Lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(p.Lines))
	}
}

func TestPaintBand(t *testing.T) {
	leaf := buildTree()
	row := layout.Rect{X: 100, Y: 16, W: 200, H: 16}
	p := Paint(row, Compute(leaf), PaintOptions{})

	// depth 4: line width 90, leaf margin 2
	if p.Band.X != 100-90+5 {
		t.Errorf("Expected band x %v, got %v", 100-90+5, p.Band.X)
	}
	if p.Band.W != 90+200+12 {
		t.Errorf("Expected band width %v, got %v", 90+200+12, p.Band.W)
	}
	if p.Parity != Odd {
		t.Errorf("Expected odd parity, got %v", p.Parity)
	}
}
