package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// ProductTag prefixes every line written by this package.
const ProductTag = "[HierarchyPlus]"

// LogType selects how a message is reported.
type LogType int

const (
	Regular LogType = iota
	Warning
	Error
)

// String returns the level word printed after the product tag
func (t LogType) String() string {
	switch t {
	case Regular:
		return "INFO"
	case Warning:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LogType(%d)", int(t))
	}
}

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "", log.LstdFlags)
	once   = make(map[string]struct{})
)

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// CustomLog writes a tagged message when condition holds and reports whether
// anything was written. An unknown LogType is a programming error.
func CustomLog(t LogType, condition bool, format string, args ...any) bool {
	if !condition {
		return false
	}
	switch t {
	case Regular, Warning, Error:
	default:
		panic(fmt.Sprintf("logging: unknown log type %d", int(t)))
	}

	message := strings.ReplaceAll(fmt.Sprintf(format, args...), `\n`, "\n")

	mu.Lock()
	defer mu.Unlock()
	logger.Printf("%s %s %s", ProductTag, t, message)
	return true
}

// Infof logs a regular message
func Infof(format string, args ...any) {
	CustomLog(Regular, true, format, args...)
}

// Warnf logs a recoverable problem
func Warnf(format string, args ...any) {
	CustomLog(Warning, true, format, args...)
}

// Errorf logs a failure that was handled but should not have happened
func Errorf(format string, args ...any) {
	CustomLog(Error, true, format, args...)
}

// WarnOnce logs a warning the first time key is seen in this process.
func WarnOnce(key, format string, args ...any) bool {
	mu.Lock()
	_, seen := once[key]
	if !seen {
		once[key] = struct{}{}
	}
	mu.Unlock()
	if seen {
		return false
	}
	return CustomLog(Warning, true, format, args...)
}

// ResetOnce forgets keys recorded by WarnOnce
func ResetOnce() {
	mu.Lock()
	defer mu.Unlock()
	once = make(map[string]struct{})
}

// ResetOnceKey forgets a single WarnOnce key
func ResetOnceKey(key string) {
	mu.Lock()
	defer mu.Unlock()
	delete(once, key)
}
