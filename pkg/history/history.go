// Package history keeps linear undo/redo stacks of item sequences.
package history

import "github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"

// Manager stores value snapshots of the placed-item sequence. A limit of 0
// keeps every snapshot.
type Manager struct {
	undo  [][]scene.Item
	redo  [][]scene.Item
	limit int
}

// New creates a manager. limit caps the undo depth; 0 means unbounded.
func New(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Commit pushes a copy of snapshot onto the undo stack and discards any
// redo states.
func (m *Manager) Commit(snapshot []scene.Item) {
	m.undo = append(m.undo, scene.Clone(snapshot))
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = append(m.undo[:0:0], m.undo[len(m.undo)-m.limit:]...)
	}
	m.redo = nil
}

// Undo returns the previous sequence. current is saved for Redo. ok is
// false when there is nothing to undo.
func (m *Manager) Undo(current []scene.Item) (prev []scene.Item, ok bool) {
	if len(m.undo) == 0 {
		return nil, false
	}
	m.redo = append(m.redo, scene.Clone(current))
	prev = m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	return scene.Clone(prev), true
}

// Redo is the mirror of Undo.
func (m *Manager) Redo(current []scene.Item) (next []scene.Item, ok bool) {
	if len(m.redo) == 0 {
		return nil, false
	}
	m.undo = append(m.undo, scene.Clone(current))
	next = m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	return scene.Clone(next), true
}

func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (m *Manager) Depth() (undo, redo int) { return len(m.undo), len(m.redo) }

// Rewrite applies f to every item of every stored snapshot. It is used when
// world coordinates change under the scene.
func (m *Manager) Rewrite(f func(it *scene.Item)) {
	for _, stack := range [][][]scene.Item{m.undo, m.redo} {
		for _, snap := range stack {
			for i := range snap {
				f(&snap[i])
			}
		}
	}
}

// Clear drops all history.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}
