package ui

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	snap := s.Snapshot()
	if snap.Status != "Ready" || snap.Busy || snap.Armed != "" {
		t.Fatalf("unexpected defaults: %+v", snap)
	}
	if snap.Color != scene.DefaultItemColor {
		t.Fatalf("color = %v, want %v", snap.Color, scene.DefaultItemColor)
	}
	if !snap.LeftPanelVisible || !snap.RightPanelVisible {
		t.Fatal("panels should start visible")
	}
}

func TestArmIsConsumedOnce(t *testing.T) {
	s := NewState()
	s.Arm("Dining Table")
	if got := s.Snapshot().Armed; got != "Dining Table" {
		t.Fatalf("armed = %q", got)
	}
	if got := s.TakeArmed(); got != "Dining Table" {
		t.Fatalf("TakeArmed = %q", got)
	}
	if got := s.TakeArmed(); got != "" {
		t.Fatalf("second TakeArmed = %q, want empty", got)
	}
}

func TestAppendLogTrims(t *testing.T) {
	s := NewState()
	for i := 0; i < 250; i++ {
		s.AppendLog(fmt.Sprintf("line %d", i))
	}
	logs := s.Snapshot().Logs
	if len(logs) != 200 {
		t.Fatalf("len(logs) = %d, want 200", len(logs))
	}
	if logs[0] != "line 50" || logs[199] != "line 249" {
		t.Fatalf("window = %q .. %q", logs[0], logs[199])
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewState()
	s.AppendLog("a")
	snap := s.Snapshot()
	snap.Logs[0] = "mutated"
	if got := s.Snapshot().Logs[0]; got != "a" {
		t.Fatalf("state log changed through snapshot: %q", got)
	}
}

func TestStatusErrorAndColor(t *testing.T) {
	s := NewState()
	want := errors.New("disk full")
	s.SetBusy(true)
	s.SetStatus("Exporting")
	s.SetError(want)
	s.SetColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	s.SetLeftPanelVisible(false)

	snap := s.Snapshot()
	if !snap.Busy || snap.Status != "Exporting" || !errors.Is(snap.LastError, want) {
		t.Fatalf("snapshot = %+v", snap)
	}
	if s.Color() != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("color = %v", s.Color())
	}
	if s.LeftPanelVisible() || !s.RightPanelVisible() {
		t.Fatal("panel visibility not recorded")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AppendLog(fmt.Sprint(i))
			s.SetBusy(i%2 == 0)
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()
	if n := len(s.Snapshot().Logs); n != 8 {
		t.Fatalf("len(logs) = %d, want 8", n)
	}
}
