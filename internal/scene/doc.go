// Package scene loads, edits and saves scene documents: a YAML tree of items
// with components, tags and layers. Service is the tree data provider of the
// hierarchy view and records every mutation for undo. Watcher reloads files
// changed on disk.
package scene
