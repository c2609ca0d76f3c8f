package ui

import (
	"image/color"
	"sync"
	"time"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Busy      bool
	LastError error
	Status    string

	// Armed is the catalog template placed by the next primary click on
	// the canvas, or "".
	Armed string
	Color color.NRGBA

	LeftPanelVisible  bool
	RightPanelVisible bool

	Logs []string

	LastUpdated time.Time
}

// AppState tracks the mutable state shared between the Gio event loop and
// background goroutines writing preview exports.
type AppState struct {
	mu sync.RWMutex

	busy      bool
	lastError error
	status    string

	armed string
	color color.NRGBA

	leftPanelVisible  bool
	rightPanelVisible bool

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	return &AppState{
		status:            "Ready",
		color:             scene.DefaultItemColor,
		leftPanelVisible:  true,
		rightPanelVisible: true,
		logLimit:          200,
		lastUpdated:       time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Busy:              s.busy,
		LastError:         s.lastError,
		Status:            s.status,
		Armed:             s.armed,
		Color:             s.color,
		LeftPanelVisible:  s.leftPanelVisible,
		RightPanelVisible: s.rightPanelVisible,
		Logs:              logCopy,
		LastUpdated:       s.lastUpdated,
	}
}

// SetBusy toggles the busy flag and updates the timestamp.
func (s *AppState) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
	s.lastUpdated = time.Now()
}

// Busy returns the current busy flag.
func (s *AppState) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// SetStatus updates the user-facing status message.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastUpdated = time.Now()
}

// SetError stores the latest error surfaced to the UI.
func (s *AppState) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	s.lastUpdated = time.Now()
}

// Arm selects the template dropped by the next canvas click. An empty
// name disarms.
func (s *AppState) Arm(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed = name
	s.lastUpdated = time.Now()
}

// TakeArmed returns the armed template and disarms.
func (s *AppState) TakeArmed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.armed
	s.armed = ""
	return name
}

// SetColor records the palette color used by "Change Color".
func (s *AppState) SetColor(c color.NRGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
	s.lastUpdated = time.Now()
}

// Color returns the current palette color.
func (s *AppState) Color() color.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.color
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = time.Now()
}

// SetLeftPanelVisible toggles the catalog dock.
func (s *AppState) SetLeftPanelVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leftPanelVisible == visible {
		return
	}
	s.leftPanelVisible = visible
	s.lastUpdated = time.Now()
}

// LeftPanelVisible returns whether the left dock should render.
func (s *AppState) LeftPanelVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leftPanelVisible
}

// SetRightPanelVisible toggles the room dock.
func (s *AppState) SetRightPanelVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rightPanelVisible == visible {
		return
	}
	s.rightPanelVisible = visible
	s.lastUpdated = time.Now()
}

// RightPanelVisible returns whether the right dock should render.
func (s *AppState) RightPanelVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rightPanelVisible
}
