// Package command implements the hplus-settings CLI, which inspects and
// produces stored settings blobs outside the application.
package command
