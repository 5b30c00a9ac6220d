package cdpdriver

import (
	"sync"
)

const (
	consoleRingCapacity = 20000
	networkRingCapacity = 500
)

// connectionState is the single owned value a Driver carries for the
// lifetime of one open_browser...close_browser session. spec.md §9 calls out
// the source's module-level global connection state as an anti-pattern to
// avoid; every field that lived in that global here hangs off a value a
// Driver owns and tests can construct in isolation.
type connectionState struct {
	mu sync.RWMutex

	connected        bool
	connectionFailed bool
	shuttingDown     bool

	childPID   int // 0 if this process did not launch Chrome (spec.md I3)
	hasChild   bool
	profileDir string

	currentTargetID  string
	currentSessionID string

	consoleRing *ring[ConsoleEntry]

	networkMu      sync.Mutex
	networkRing    *ring[NetworkRequestEntry]
	networkEnabled bool

	frameMu                   sync.Mutex
	frameToContext            map[string]int64
	currentExecutionContextID int64

	dialogMu sync.Mutex
	dialog   *PendingDialog
}

func newConnectionState() *connectionState {
	return &connectionState{
		consoleRing:    newRing[ConsoleEntry](consoleRingCapacity),
		networkRing:    newRing[NetworkRequestEntry](networkRingCapacity),
		frameToContext: make(map[string]int64),
	}
}

func (s *connectionState) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

func (s *connectionState) isConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *connectionState) setSession(targetID, sessionID string) {
	s.mu.Lock()
	s.currentTargetID = targetID
	s.currentSessionID = sessionID
	s.mu.Unlock()
}

func (s *connectionState) clearSession() {
	s.setSession("", "")
	s.networkMu.Lock()
	s.networkEnabled = false
	s.networkMu.Unlock()
}

func (s *connectionState) session() (targetID, sessionID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTargetID, s.currentSessionID
}

func (s *connectionState) hasSession() bool {
	_, sessionID := s.session()
	return sessionID != ""
}

func (s *connectionState) setChild(pid int) {
	s.mu.Lock()
	s.childPID = pid
	s.hasChild = true
	s.mu.Unlock()
}

func (s *connectionState) child() (pid int, owned bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.childPID, s.hasChild
}

func (s *connectionState) clearConsole() {
	s.mu.Lock()
	s.consoleRing = newRing[ConsoleEntry](consoleRingCapacity)
	s.mu.Unlock()
}

func (s *connectionState) appendConsole(entry ConsoleEntry) {
	s.mu.Lock()
	s.consoleRing.append(entry)
	s.mu.Unlock()
}

func (s *connectionState) consoleSnapshot() []ConsoleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consoleRing.snapshot()
}

func (s *connectionState) appendNetworkRequest(entry NetworkRequestEntry) {
	s.networkMu.Lock()
	s.networkRing.append(entry)
	s.networkMu.Unlock()
}

func (s *connectionState) fillNetworkResponse(requestID string, statusCode int, statusText string) bool {
	s.networkMu.Lock()
	defer s.networkMu.Unlock()
	return s.networkRing.update(
		func(e NetworkRequestEntry) bool { return e.RequestID == requestID },
		func(e *NetworkRequestEntry) {
			e.StatusCode = statusCode
			e.StatusText = statusText
		},
	)
}

func (s *connectionState) networkSnapshot() []NetworkRequestEntry {
	s.networkMu.Lock()
	defer s.networkMu.Unlock()
	return s.networkRing.snapshot()
}

func (s *connectionState) markNetworkEnabled() (alreadyEnabled bool) {
	s.networkMu.Lock()
	defer s.networkMu.Unlock()
	alreadyEnabled = s.networkEnabled
	s.networkEnabled = true
	return alreadyEnabled
}

func (s *connectionState) recordFrameContext(frameID string, contextID int64) {
	s.frameMu.Lock()
	s.frameToContext[frameID] = contextID
	s.frameMu.Unlock()
}

func (s *connectionState) contextForFrame(frameID string) (int64, bool) {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	id, ok := s.frameToContext[frameID]
	return id, ok
}

func (s *connectionState) setCurrentExecutionContext(id int64) {
	s.frameMu.Lock()
	s.currentExecutionContextID = id
	s.frameMu.Unlock()
}

func (s *connectionState) getCurrentExecutionContext() int64 {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	return s.currentExecutionContextID
}

func (s *connectionState) setDialog(d PendingDialog) {
	s.dialogMu.Lock()
	cp := d
	s.dialog = &cp
	s.dialogMu.Unlock()
}

func (s *connectionState) clearDialog() {
	s.dialogMu.Lock()
	s.dialog = nil
	s.dialogMu.Unlock()
}

func (s *connectionState) getDialog() (PendingDialog, bool) {
	s.dialogMu.Lock()
	defer s.dialogMu.Unlock()
	if s.dialog == nil {
		return PendingDialog{}, false
	}
	return *s.dialog, true
}
