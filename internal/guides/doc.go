// Package guides computes the tree guide lines drawn in the indent gutter
// left of each hierarchy row, and the alternating row colour bands.
package guides
