// Package hierarchy turns each visible tree row into a RowPlan: the colours,
// guide lines, icons and labels to draw, plus the hit areas used to route
// pointer events back to the toggle controller and context menus.
//
// A Pipeline is created once per view. Row is called for every visible row
// in order during a redraw and EndPass once the pass is over.
package hierarchy
