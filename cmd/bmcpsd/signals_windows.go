//go:build windows

package main

import (
	"os"
	"os/signal"
)

// setupSignalHandling sets up signal handling for Windows.
func setupSignalHandling(sigChan chan os.Signal) {
	signal.Notify(sigChan, os.Interrupt)
}
