// Package toggle implements click and drag toggling of enabled states from
// hierarchy row icons.
//
// A press on an icon flips that item and starts a gesture; dragging across
// further icons applies the same new state to each of them exactly once. The
// controller is invoked separately for every icon on every row, so the
// gesture keeps its own visited set and holds a shared Capture that other
// parts of the UI can take away.
package toggle
