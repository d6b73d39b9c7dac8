// Package layout splits a hierarchy row into its name, icon strip and label
// regions. All sizes are in device independent units; a row's icons are laid
// out right to left in fixed 18 unit slots.
package layout
