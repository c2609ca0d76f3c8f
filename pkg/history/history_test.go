package history

import (
	"reflect"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// states builds S0..Sn where each state adds or moves one item.
func states(n int) [][]scene.Item {
	out := [][]scene.Item{nil}
	var cur []scene.Item
	for i := 1; i <= n; i++ {
		cur = scene.Clone(cur)
		if i%2 == 1 {
			cur = append(cur, scene.Item{ID: string(rune('a' + i)), Pos: geom.Pt(float64(i), 0), Size: geom.Size{W: 50, H: 50}})
		} else {
			cur[0].Pos = geom.Pt(float64(i*10), float64(i))
		}
		out = append(out, cur)
	}
	return out
}

func TestUndoRedoInverse(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		s := states(n)
		m := New(0)
		cur := s[0]
		for i := 1; i <= n; i++ {
			m.Commit(cur)
			cur = s[i]
		}

		for i := 0; i < n; i++ {
			prev, ok := m.Undo(cur)
			if !ok {
				t.Fatalf("n=%d: undo %d failed", n, i)
			}
			cur = prev
		}
		if len(cur) != len(s[0]) {
			t.Fatalf("n=%d: after undo got %d items, want %d", n, len(cur), len(s[0]))
		}
		if _, ok := m.Undo(cur); ok {
			t.Fatalf("n=%d: undo on empty stack should be a no-op", n)
		}

		for i := 0; i < n; i++ {
			next, ok := m.Redo(cur)
			if !ok {
				t.Fatalf("n=%d: redo %d failed", n, i)
			}
			cur = next
		}
		if !reflect.DeepEqual(cur, s[n]) {
			t.Fatalf("n=%d: after redo got %+v, want %+v", n, cur, s[n])
		}
	}
}

func TestCommitClearsRedo(t *testing.T) {
	s := states(3)
	m := New(0)
	m.Commit(s[0])
	m.Commit(s[1])
	cur := s[2]

	cur, _ = m.Undo(cur)
	if !m.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	m.Commit(cur)
	if m.CanRedo() {
		t.Fatal("commit must clear redo")
	}
	if _, ok := m.Redo(cur); ok {
		t.Fatal("redo should be a no-op")
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	m := New(0)
	live := []scene.Item{{ID: "a", Pos: geom.Pt(1, 1)}}
	m.Commit(live)
	live[0].Pos = geom.Pt(50, 50)

	prev, _ := m.Undo(live)
	if prev[0].Pos != geom.Pt(1, 1) {
		t.Fatalf("snapshot was mutated through the live slice: %+v", prev[0].Pos)
	}
	prev[0].Pos = geom.Pt(7, 7)
	next, _ := m.Redo(prev)
	if next[0].Pos != geom.Pt(50, 50) {
		t.Fatalf("redo state = %+v", next[0].Pos)
	}
}

func TestLimit(t *testing.T) {
	m := New(2)
	for i := 0; i < 5; i++ {
		m.Commit(nil)
	}
	if u, _ := m.Depth(); u != 2 {
		t.Fatalf("undo depth = %d, want 2", u)
	}
	m.Clear()
	if m.CanUndo() || m.CanRedo() {
		t.Fatal("Clear left history behind")
	}
}

func TestRewriteTouchesBothStacks(t *testing.T) {
	s := states(3)
	m := New(0)
	m.Commit(s[0])
	m.Commit(s[1])
	m.Commit(s[2])
	cur, _ := m.Undo(s[3])

	m.Rewrite(func(it *scene.Item) { it.Pos = it.Pos.Mul(2) })

	next, ok := m.Redo(cur)
	if !ok || len(next) != len(s[3]) {
		t.Fatalf("redo = %v, %v", next, ok)
	}
	for i := range next {
		if next[i].Pos != s[3][i].Pos.Mul(2) {
			t.Fatalf("redo item %d at %+v, want %+v", i, next[i].Pos, s[3][i].Pos.Mul(2))
		}
	}
	m.Undo(next)
	prev, _ := m.Undo(cur)
	if len(prev) != 1 || prev[0].Pos != s[1][0].Pos.Mul(2) {
		t.Fatalf("undo restored %+v", prev)
	}
}
