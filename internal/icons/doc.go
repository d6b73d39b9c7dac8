// Package icons resolves the icon drawn for an item or component.
//
// Lookups go through three layers: custom icons loaded from a folder, a
// per-type cache, and the thumbnail provider. Thumbnails the provider flags
// as generic (plain script or binary glyphs) are never cached; the resolver
// answers with the default icon instead so scripts keep a consistent look.
package icons
