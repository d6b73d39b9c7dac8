package scene

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a scene
type Document struct {
	Name   string         `yaml:"name"`
	Tags   []string       `yaml:"tags,omitempty"`
	Layers map[int]string `yaml:"layers,omitempty"`
	Items  []ItemDoc      `yaml:"items"`
}

// ItemDoc is one item and its subtree
type ItemDoc struct {
	ID         string         `yaml:"id,omitempty"`
	Name       string         `yaml:"name"`
	Active     *bool          `yaml:"active,omitempty"`
	Tag        string         `yaml:"tag,omitempty"`
	Layer      int            `yaml:"layer,omitempty"`
	Icon       string         `yaml:"icon,omitempty"`
	Components []ComponentDoc `yaml:"components,omitempty"`
	Children   []ItemDoc      `yaml:"children,omitempty"`
}

// ComponentDoc is a component entry. A bare string is shorthand for an
// enabled component of that type.
type ComponentDoc struct {
	Type    string `yaml:"type,omitempty"`
	Kind    string `yaml:"kind,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`
	Missing bool   `yaml:"missing,omitempty"`
}

type componentFields ComponentDoc

// UnmarshalYAML accepts either a scalar type name or a mapping
func (c *ComponentDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = ComponentDoc{Type: node.Value}
		return nil
	case yaml.MappingNode:
		var fields componentFields
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*c = ComponentDoc(fields)
		if c.Type == "" && !c.Missing {
			return fmt.Errorf("line %d: component needs a type or missing: true", node.Line)
		}
		return nil
	default:
		return fmt.Errorf("line %d: unexpected component entry", node.Line)
	}
}

// MarshalYAML writes the scalar shorthand when nothing else is set
func (c ComponentDoc) MarshalYAML() (interface{}, error) {
	if c.Kind == "" && c.Enabled == nil && !c.Missing {
		return c.Type, nil
	}
	return componentFields(c), nil
}

// ParseDocument decodes a YAML scene
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &doc, nil
}

// Marshal encodes the document as YAML with two space indentation
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode scene: %w", err)
	}
	return buf.Bytes(), nil
}
