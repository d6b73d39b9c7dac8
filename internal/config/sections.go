package config

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Section layout of the decompressed settings text
const (
	// MainSection tags the settings payload
	MainSection = "MAIN"

	// SectionTerminator closes every section
	SectionTerminator = "\u200b\u200b\u200b"
)

var sectionPattern = regexp2.MustCompile(`(\w+)\[(.*?)\]\u200B\u200B\u200B`, regexp2.Singleline)

// WrapSection formats payload as TAG[payload] followed by the terminator
func WrapSection(tag, payload string) string {
	var b strings.Builder
	b.Grow(len(tag) + len(payload) + 2 + len(SectionTerminator))
	b.WriteString(tag)
	b.WriteByte('[')
	b.WriteString(payload)
	b.WriteByte(']')
	b.WriteString(SectionTerminator)
	return b.String()
}

// ParseSections extracts every TAG[payload] section. A tag seen twice is an
// error.
func ParseSections(text string) (map[string]string, error) {
	sections := make(map[string]string)

	m, err := sectionPattern.FindStringMatch(text)
	for m != nil && err == nil {
		groups := m.Groups()
		tag, payload := groups[1].String(), groups[2].String()
		if _, exists := sections[tag]; exists {
			return nil, fmt.Errorf("duplicate settings section: %s", tag)
		}
		sections[tag] = payload
		m, err = sectionPattern.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings sections: %w", err)
	}

	return sections, nil
}
