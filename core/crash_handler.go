package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
)

// SetCrashCleanup registers the function that restores the terminal before a crash report
// Keeps core independent of the terminal backend
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = fn
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()
	if cleanup != nil {
		cleanup()
	}

	// Use \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Safe wraps fn with the same panic recovery as Go, for use with errgroup
func Safe(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
