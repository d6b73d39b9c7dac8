package hierarchy

import "github.com/hierarchyplus/hierarchy-plus/internal/config"

// Channels selects which palette colours a scope overrides
type Channels uint8

const (
	Background Channels = 1 << iota
	Foreground
	General

	AllChannels = Background | Foreground | General
)

// Has reports whether every channel of o is in c
func (c Channels) Has(o Channels) bool {
	return c&o == o
}

func (c Channels) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, ch := range []struct {
		flag Channels
		name string
	}{{Background, "bg"}, {Foreground, "fg"}, {General, "general"}} {
		if !c.Has(ch.flag) {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += ch.name
	}
	return s
}

// Palette is the transient draw colour state shared by everything drawn in a
// row. Colours are changed through scopes only.
type Palette struct {
	background config.Color
	foreground config.Color
	general    config.Color
}

// NewPalette returns a palette with every channel white
func NewPalette() *Palette {
	return &Palette{
		background: config.White,
		foreground: config.White,
		general:    config.White,
	}
}

// Get returns the current colour of a single channel
func (p *Palette) Get(ch Channels) config.Color {
	switch ch {
	case Background:
		return p.background
	case Foreground:
		return p.foreground
	case General:
		return p.general
	}
	panic("hierarchy: Get needs exactly one channel, got " + ch.String())
}

// Content returns the colour text and images are drawn with
func (p *Palette) Content() config.Color {
	return p.general.Mul(p.foreground)
}

// Fill returns the colour backgrounds are drawn with
func (p *Palette) Fill() config.Color {
	return p.general.Mul(p.background)
}

// Push overrides channels with c until the scope is released
func (p *Palette) Push(ch Channels, c config.Color) *ColorScope {
	s := &ColorScope{palette: p, channels: ch}
	s.set(c)
	return s
}

// PushIf overrides channels only when active. The returned scope is always
// safe to release.
func (p *Palette) PushIf(ch Channels, active bool, c config.Color) *ColorScope {
	s := &ColorScope{palette: p, channels: ch}
	if active {
		s.set(c)
	}
	return s
}

// PushEither overrides channels with a when cond holds, b otherwise
func (p *Palette) PushEither(ch Channels, cond bool, a, b config.Color) *ColorScope {
	if cond {
		return p.Push(ch, a)
	}
	return p.Push(ch, b)
}

// ColorScope restores the palette when released
type ColorScope struct {
	palette  *Palette
	channels Channels
	saved    Palette
	changed  bool
}

func (s *ColorScope) set(c config.Color) {
	s.saved = *s.palette
	s.changed = true

	if s.channels.Has(Background) {
		s.palette.background = c
	}
	if s.channels.Has(Foreground) {
		s.palette.foreground = c
	}
	if s.channels.Has(General) {
		s.palette.general = c
	}
}

// Release restores the overridden channels. Releasing twice, or releasing a
// nil scope, does nothing.
func (s *ColorScope) Release() {
	if s == nil || !s.changed {
		return
	}
	s.changed = false

	if s.channels.Has(Background) {
		s.palette.background = s.saved.background
	}
	if s.channels.Has(Foreground) {
		s.palette.foreground = s.saved.foreground
	}
	if s.channels.Has(General) {
		s.palette.general = s.saved.general
	}
}
