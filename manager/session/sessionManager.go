package session

import (
	"NaviCode/stream"
	"sync"
)

// ActiveSearch is the per-file search state. Matches are snapshots of the
// matching lines at scan time and are not re-validated when the file changes.
type ActiveSearch struct {
	Pattern string
	IsRegex bool
	Matches []stream.Line
	// Cursor indexes Matches, -1 when Matches is empty.
	Cursor int
}

type State struct {
	CursorLine int
	PageSize   int
	Search     *ActiveSearch
}

func NewSessionManager(defaultPageSize int) *SessionManager {
	return &SessionManager{
		sessions:        make(map[string]*State),
		defaultPageSize: defaultPageSize,
	}
}

// SessionManager keeps one State per distinct file path for the lifetime of
// the process. States are created lazily and never evicted.
type SessionManager struct {
	sessions        map[string]*State
	defaultPageSize int
	mutex           sync.Mutex
}

func (instance *SessionManager) Resolve(path string) *State {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()

	if state, exists := instance.sessions[path]; exists {
		return state
	}
	state := &State{
		CursorLine: 1,
		PageSize:   instance.defaultPageSize,
	}
	instance.sessions[path] = state
	return state
}

func (instance *SessionManager) Count() int {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()

	return len(instance.sessions)
}
