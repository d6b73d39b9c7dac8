package hierarchy

import (
	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/guides"
	"github.com/hierarchyplus/hierarchy-plus/internal/icons"
	"github.com/hierarchyplus/hierarchy-plus/internal/layout"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
	"github.com/hierarchyplus/hierarchy-plus/internal/scene"
	"github.com/hierarchyplus/hierarchy-plus/internal/toggle"
)

// Label colours
var (
	LabelBackground = config.RGBA(0, 0, 0, 0.4)
	LabelForeground = config.RGBA(0.7, 0.7, 0.7, 1)
)

// Host is the scene the pipeline reads and edits
type Host interface {
	scene.Provider
	scene.Mutator
}

// Pipeline plans rows and routes pointer events for one hierarchy view
type Pipeline struct {
	store      *config.Store
	resolver   *icons.Resolver
	host       Host
	controller *toggle.Controller
	capture    *toggle.Capture
	palette    *Palette

	scopes [3]*ColorScope

	inPass       bool
	maxIcons     int
	lastMaxIcons int
	plans        []RowPlan
}

// NewPipeline wires the pipeline to its collaborators
func NewPipeline(store *config.Store, resolver *icons.Resolver, host Host, capture *toggle.Capture) *Pipeline {
	if capture == nil {
		capture = &toggle.Capture{}
	}
	p := &Pipeline{
		store:    store,
		resolver: resolver,
		host:     host,
		capture:  capture,
		palette:  NewPalette(),
	}
	p.controller = toggle.NewController(capture, host, func() bool {
		return store.Get().EnableDragToggle.Get()
	})
	return p
}

// Palette returns the shared draw colour state
func (p *Pipeline) Palette() *Palette {
	return p.palette
}

// Controller returns the toggle controller
func (p *Pipeline) Controller() *toggle.Controller {
	return p.controller
}

// Capture returns the pointer capture shared with the view
func (p *Pipeline) Capture() *toggle.Capture {
	return p.capture
}

// Plans returns the rows planned in the current or last pass
func (p *Pipeline) Plans() []RowPlan {
	return p.plans
}

// LastMaxIcons returns the widest icon strip seen in the previous pass
func (p *Pipeline) LastMaxIcons() int {
	return p.lastMaxIcons
}

// EndPass finishes a redraw pass. The next Row starts a new one.
func (p *Pipeline) EndPass() {
	p.inPass = false
	p.releaseScopes()
}

// Row plans one row. Rows must be passed top to bottom.
func (p *Pipeline) Row(in RowInput) RowPlan {
	if !p.inPass {
		p.inPass = true
		p.lastMaxIcons = p.maxIcons
		p.maxIcons = 0
		p.plans = p.plans[:0]
	}

	p.releaseScopes()
	s := p.store.Get()
	if s.ColorsActive() {
		p.scopes[0] = p.palette.PushIf(General, s.ColorOneEnabled.Get(), s.ColorOne.Get())
		p.scopes[1] = p.palette.PushIf(Foreground, s.ColorTwoEnabled.Get(), s.ColorTwo.Get())
		p.scopes[2] = p.palette.PushIf(Background, s.ColorThreeEnabled.Get(), s.ColorThree.Get())
	}

	it := in.Item
	plan := RowPlan{
		Item:           it,
		Rect:           in.Rect,
		NameColor:      p.palette.Content(),
		NameBackground: p.palette.Fill(),
		HasFoldout:     it.HasChildren(),
	}

	drawColors := s.ColorsActive() && (s.GuideLinesEnabled.Get() || s.RowColoringActive())
	drawIcons := s.IconsActive()
	if !drawColors && !drawIcons {
		p.plans = append(p.plans, plan)
		return plan
	}
	plan.Decorated = true

	if drawColors {
		p.planGuides(s, &plan)
	}

	var candidates []candidate
	if drawIcons {
		candidates = p.candidates(s, it)
		if len(candidates) > p.maxIcons {
			p.maxIcons = len(candidates)
		}
	}

	labels := s.LabelsActive()
	req := layout.Input{
		Row:          in.Rect,
		NameWidth:    in.NameWidth,
		IconCount:    len(candidates),
		LastMaxIcons: p.lastMaxIcons,
		Flags: layout.Flags{
			AlwaysShowIcons:       s.AlwaysShowIcons.Get(),
			BackgroundEnabled:     s.ColorsEnabled.Get() && s.IconBackgroundColorEnabled.Get(),
			BackgroundOverlapOnly: s.IconBackgroundOverlapOnly.Get(),
			XOffset:               s.GUIXOffset.Get(),
		},
	}
	if labels {
		req.Labels = layout.LabelRequest{
			ShowLayer:  s.LayerLabelEnabled.Get() && (s.DisplayDefaultLayerLabel.Get() || it.Layer != 0),
			LayerWidth: s.LayerLabelWidth.Get(),
			ShowTag:    s.TagLabelEnabled.Get() && (s.DisplayUntaggedLabel.Get() || !it.CompareTag(model.DefaultTag)),
			TagWidth:   s.TagLabelWidth.Get(),
		}
	}
	res := layout.Compute(req)

	plan.Icons = p.planIcons(s, it, candidates, res.Icons)
	if labels {
		plan.Layer = p.planLabel(res.Layer, model.LayerLabel(it.Layer, p.host.LayerName(it.Layer), s.DisplayLayerIndex.Get()))
		plan.Tag = p.planLabel(res.Tag, it.Tag)
	}

	p.plans = append(p.plans, plan)
	return plan
}

func (p *Pipeline) planGuides(s *config.Settings, plan *RowPlan) {
	painting := guides.Paint(plan.Rect, guides.Compute(plan.Item), guides.PaintOptions{
		GuideLines: s.GuideLinesEnabled.Get(),
	})
	plan.Gutter = painting.Gutter
	plan.Lines = painting.Lines
	plan.LinesColor = s.GuideLinesColor.Get()

	if !s.RowColoringActive() {
		return
	}
	band := &Band{Rect: painting.Band, Parity: painting.Parity}
	switch {
	case painting.Parity == guides.Odd:
		if !s.RowColoringOddEnabled.Get() {
			return
		}
		band.Color = s.RowOddColor.Get()
	case s.RowColoringEvenEnabled.Get():
		band.Color = s.RowEvenColor.Get()
	default:
		return
	}
	plan.Band = band
}

type candidate struct {
	component *model.Component
	object    bool
}

// candidates lists the icons a row wants, in drawing order
func (p *Pipeline) candidates(s *config.Settings, it *model.Item) []candidate {
	var out []candidate
	if s.ShowGameObjectIcon.Get() {
		out = append(out, candidate{object: true})
	}

	first := true
	for _, c := range p.host.Components(it) {
		if c != nil && !c.Missing {
			if first {
				first = false
				if !s.ShowTransformIcon.Get() {
					continue
				}
			} else if !s.ShowNonBehaviourIcons.Get() && !c.IsToggleable() {
				continue
			}
			if s.IsHiddenType(c.Type) {
				continue
			}
		}
		out = append(out, candidate{component: c})
	}
	return out
}

func (p *Pipeline) planIcons(s *config.Settings, it *model.Item, candidates []candidate, slots []layout.IconSlot) []IconPlan {
	if len(slots) == 0 {
		return nil
	}

	out := make([]IconPlan, 0, len(slots))
	for i, slot := range slots {
		if slot.Kind == layout.SlotEllipsis {
			out = append(out, IconPlan{Rect: slot.Rect, Ellipsis: true})
			continue
		}

		icon := IconPlan{Rect: slot.Rect, LinkCursor: s.LinkCursorOnHover.Get()}
		enabled := true
		if cand := candidates[i]; cand.object {
			icon.Descriptor = p.resolver.ResolveItem(it, s.UseCustomGameObjectIcon.Get())
			icon.Target = it
			enabled = it.IsEnabled()
		} else {
			icon.Component = cand.component
			icon.Descriptor = p.resolver.Resolve(cand.component)
			if t, ok := model.AsTogglable(cand.component); ok {
				icon.Target = t
				enabled = t.IsEnabled()
			}
		}
		p.tint(s, &icon, enabled)

		if slot.Background {
			bg := s.IconBackground.Get()
			icon.Background = &bg
		}
		out = append(out, icon)
	}
	return out
}

func (p *Pipeline) tint(s *config.Settings, icon *IconPlan, enabled bool) {
	icon.Faded = !enabled
	scope := p.palette.PushEither(AllChannels, icon.Faded, s.IconFadedTintColor.Get(), s.IconTintColor.Get())
	icon.Tint = p.palette.Get(General)
	scope.Release()
}

func (p *Pipeline) planLabel(r layout.Label, text string) LabelPlan {
	if !r.Visible {
		return LabelPlan{}
	}
	bg := p.palette.Push(Background, LabelBackground)
	fg := p.palette.Push(Foreground, LabelForeground)
	plan := LabelPlan{
		Visible:    true,
		Rect:       r.Rect,
		Text:       text,
		Background: p.palette.Fill(),
		Foreground: p.palette.Content(),
	}
	fg.Release()
	bg.Release()
	return plan
}

func (p *Pipeline) releaseScopes() {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		p.scopes[i].Release()
		p.scopes[i] = nil
	}
}
