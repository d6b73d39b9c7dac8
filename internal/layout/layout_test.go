package layout

import "testing"

// rowFor returns a row whose base rect is exactly w wide, starting at x=18.
func rowFor(w float32) Rect {
	return Rect{X: 0, Y: 32, W: w + RightPadding + NamePadding, H: 16}
}

func kinds(slots []IconSlot) []SlotKind {
	out := make([]SlotKind, len(slots))
	for i, s := range slots {
		out[i] = s.Kind
	}
	return out
}

func equalKinds(a, b []SlotKind) bool {
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

func TestBaseRect(t *testing.T) {
	base := BaseRect(Rect{X: 10, Y: 5, W: 300, H: 16}, 40, 4)
	if base.X != 68 {
		t.Errorf("Expected base x 68, got %v", base.X)
	}
	if base.W != 300-32+4-58 {
		t.Errorf("Expected base width %v, got %v", 300-32+4-58, base.W)
	}
	if base.Y != 5 || base.H != 16 {
		t.Errorf("Expected y and height to be kept, got %v %v", base.Y, base.H)
	}
}

func TestIconSlotThresholds(t *testing.T) {
	tests := []struct {
		name   string
		width  float32
		count  int
		always bool
		want   []SlotKind
	}{
		{"all fit", 72, 3, false, []SlotKind{SlotIcon, SlotIcon, SlotIcon}},
		{"one slot short", 54, 3, false, []SlotKind{SlotIcon, SlotIcon, SlotEllipsis}},
		{"one slot short always show", 54, 3, true, []SlotKind{SlotIcon, SlotIcon, SlotIcon}},
		{"below one slot always show", 10, 2, true, []SlotKind{SlotIcon, SlotIcon}},
		{"below one slot", 10, 2, false, []SlotKind{SlotEllipsis, SlotEllipsis}},
		{"dots only", 30, 1, false, []SlotKind{SlotEllipsis}},
		{"no icons", 100, 0, false, []SlotKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(Input{
				Row:       rowFor(tt.width),
				IconCount: tt.count,
				Flags:     Flags{AlwaysShowIcons: tt.always},
			})
			if got := kinds(res.Icons); !equalKinds(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIconSlotPositions(t *testing.T) {
	res := Compute(Input{Row: rowFor(54), IconCount: 5})

	wantX := []float32{54, 36, 18, 18, 18}
	for i, slot := range res.Icons {
		if slot.Rect.X != wantX[i] {
			t.Errorf("Slot %d: expected x %v, got %v", i, wantX[i], slot.Rect.X)
		}
		if slot.Rect.W != SlotWidth {
			t.Errorf("Slot %d: expected width %v, got %v", i, SlotWidth, slot.Rect.W)
		}
		if slot.Rect.Y != 32 || slot.Rect.H != 16 {
			t.Errorf("Slot %d: expected row y and height, got %v %v", i, slot.Rect.Y, slot.Rect.H)
		}
	}
}

func TestIconBackground(t *testing.T) {
	tests := []struct {
		name        string
		flags       Flags
		wantBgSlots []bool
	}{
		{
			name:        "disabled",
			flags:       Flags{AlwaysShowIcons: true},
			wantBgSlots: []bool{false, false, false, false},
		},
		{
			name:        "overlap only",
			flags:       Flags{AlwaysShowIcons: true, BackgroundEnabled: true, BackgroundOverlapOnly: true},
			wantBgSlots: []bool{false, false, false, true},
		},
		{
			name:        "always",
			flags:       Flags{AlwaysShowIcons: true, BackgroundEnabled: true},
			wantBgSlots: []bool{true, true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(Input{Row: rowFor(54), IconCount: 4, Flags: tt.flags})
			for i, slot := range res.Icons {
				if slot.Background != tt.wantBgSlots[i] {
					t.Errorf("Slot %d: expected background %v, got %v", i, tt.wantBgSlots[i], slot.Background)
				}
			}
		})
	}
}

func TestEllipsisHasNoBackground(t *testing.T) {
	res := Compute(Input{
		Row:       rowFor(20),
		IconCount: 1,
		Flags:     Flags{BackgroundEnabled: true},
	})
	if res.Icons[0].Kind != SlotEllipsis {
		t.Fatalf("Expected ellipsis, got %v", res.Icons[0].Kind)
	}
	if res.Icons[0].Background {
		t.Error("Expected no background behind an ellipsis")
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name      string
		width     float32
		lastMax   int
		req       LabelRequest
		wantLayer Label
		wantTag   Label
	}{
		{
			name:      "both fit",
			width:     300,
			lastMax:   2,
			req:       LabelRequest{ShowLayer: true, LayerWidth: 75, ShowTag: true, TagWidth: 75},
			wantLayer: Label{Rect: Rect{X: 189, Y: 32, W: 75, H: 16}, Visible: true},
			wantTag:   Label{Rect: Rect{X: 96, Y: 32, W: 75, H: 16}, Visible: true},
		},
		{
			name:      "layer hidden keeps its room",
			width:     300,
			lastMax:   2,
			req:       LabelRequest{LayerWidth: 75, ShowTag: true, TagWidth: 75},
			wantLayer: Label{},
			wantTag:   Label{Rect: Rect{X: 96, Y: 32, W: 75, H: 16}, Visible: true},
		},
		{
			name:      "layer clamped tag collapsed",
			width:     100,
			lastMax:   2,
			req:       LabelRequest{ShowLayer: true, LayerWidth: 75, ShowTag: true, TagWidth: 75},
			wantLayer: Label{Rect: Rect{X: 18, Y: 32, W: 46, H: 16}, Visible: true},
			wantTag:   Label{Rect: Rect{X: -29, Y: 32, W: 0, H: 16}},
		},
		{
			name:      "at threshold",
			width:     64,
			lastMax:   2,
			req:       LabelRequest{ShowLayer: true, LayerWidth: 75},
			wantLayer: Label{Rect: Rect{X: 18, Y: 32, W: 10, H: 16}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(Input{Row: rowFor(tt.width), LastMaxIcons: tt.lastMax, Labels: tt.req})
			if res.Layer != tt.wantLayer {
				t.Errorf("Expected layer %+v, got %+v", tt.wantLayer, res.Layer)
			}
			if res.Tag != tt.wantTag {
				t.Errorf("Expected tag %+v, got %+v", tt.wantTag, res.Tag)
			}
		})
	}
}

func TestUseEnd(t *testing.T) {
	r := Rect{X: 10, W: 100, H: 16}
	got := r.UseEnd(30)
	if got.X != 80 || got.W != 30 {
		t.Errorf("Expected carved rect at 80 width 30, got %+v", got)
	}
	if r.W != 70 {
		t.Errorf("Expected remaining width 70, got %v", r.W)
	}

	over := r.UseEnd(100)
	if r.W != -30 || over.X != -20 {
		t.Errorf("Expected negative remainder, got width %v and x %v", r.W, over.X)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 18, H: 16}
	if !r.Contains(0, 0) || !r.Contains(17.9, 15.9) {
		t.Error("Expected point inside")
	}
	if r.Contains(18, 5) || r.Contains(5, 16) || r.Contains(-1, 5) {
		t.Error("Expected point outside")
	}
}
