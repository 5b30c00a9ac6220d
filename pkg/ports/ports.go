// Package ports resolves a free TCP port for Chrome's --remote-debugging-port
// flag when the caller names a specific one that is already taken, rather
// than failing the launch outright.
package ports

import (
	"fmt"
	"math/rand"
	"net"
	"time"
)

const maxProbeAttempts = 50

var prober = rand.New(rand.NewSource(time.Now().UnixNano()))

// FindAvailablePort returns preferred if it is free, otherwise a random port
// within [preferred, preferred+1000] (clamped to 65535).
func FindAvailablePort(preferred int) (int, error) {
	if isPortAvailable(preferred) {
		return preferred, nil
	}
	return FindAvailablePortInRange(preferred, clampPort(preferred+1000))
}

// FindAvailablePortInRange returns a random free port within [minPort, maxPort].
func FindAvailablePortInRange(minPort, maxPort int) (int, error) {
	if minPort > maxPort {
		return 0, fmt.Errorf("ports: minPort (%d) must be <= maxPort (%d)", minPort, maxPort)
	}
	for attempt := 0; attempt < maxProbeAttempts; attempt++ {
		candidate := minPort + prober.Intn(maxPort-minPort+1)
		if isPortAvailable(candidate) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("ports: no free port found in [%d, %d] after %d attempts", minPort, maxPort, maxProbeAttempts)
}

func clampPort(port int) int {
	if port > 65535 {
		return 65535
	}
	return port
}

func isPortAvailable(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	defer l.Close()
	return true
}
