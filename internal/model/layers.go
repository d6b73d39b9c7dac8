package model

import "fmt"

// MaxLayers is the number of layer slots an item can be assigned to
const MaxLayers = 32

// DefaultLayerNames holds the built-in layer names; other slots are unnamed
var DefaultLayerNames = map[int]string{
	0: "Default",
	1: "TransparentFX",
	2: "Ignore Raycast",
	4: "Water",
	5: "UI",
}

// DefaultTags are available in every scene
var DefaultTags = []string{
	DefaultTag,
	"Respawn",
	"Finish",
	"EditorOnly",
	"MainCamera",
	"Player",
	"GameController",
}

// LayerLabel formats a layer for display, optionally prefixed with its index
func LayerLabel(index int, name string, withIndex bool) string {
	if withIndex {
		return fmt.Sprintf("%d: %s", index, name)
	}
	return name
}
