// Package logging writes tagged, leveled log lines for the application and
// keeps track of warnings that should only be reported once per process.
package logging
