package navigator

import (
	"NaviCode/manager/session"
	"NaviCode/screen"
	"NaviCode/search"
	"NaviCode/stream"
	"fmt"
)

func NewNavigator(sessions *session.SessionManager) *Navigator {
	return &Navigator{sessions: sessions}
}

// Navigator owns every cursor transition. Each operation resolves the state
// for the file, recounts the file's lines fresh, mutates the state, and
// renders the window starting at the cursor.
type Navigator struct {
	sessions *session.SessionManager
}

// GoToLine moves the cursor to clamp(line, 1, totalLines). A positive
// pageSize overrides the session's page size from here on.
func (instance *Navigator) GoToLine(path string, line int, pageSize int) (Outcome, error) {
	total, err := stream.TotalLines(path)
	if err != nil {
		return Outcome{}, err
	}
	state := instance.sessions.Resolve(path)
	if pageSize > 0 {
		state.PageSize = pageSize
	}
	state.CursorLine = clamp(line, 1, total)
	return instance.renderAt(path, state, total)
}

func (instance *Navigator) PageUp(path string) (Outcome, error) {
	total, err := stream.TotalLines(path)
	if err != nil {
		return Outcome{}, err
	}
	state := instance.sessions.Resolve(path)
	state.CursorLine = clamp(state.CursorLine-state.PageSize, 1, total)
	return instance.renderAt(path, state, total)
}

func (instance *Navigator) PageDown(path string) (Outcome, error) {
	total, err := stream.TotalLines(path)
	if err != nil {
		return Outcome{}, err
	}
	state := instance.sessions.Resolve(path)
	state.CursorLine = clamp(state.CursorLine+state.PageSize, 1, total)
	return instance.renderAt(path, state, total)
}

// Find replaces the file's active search. The previous search is discarded
// on every completed scan, a no-match scan included; a scan that never ran
// (bad pattern, unreadable file) leaves the prior state untouched.
func (instance *Navigator) Find(path string, pattern string, isRegex bool) (Outcome, error) {
	total, err := stream.TotalLines(path)
	if err != nil {
		return Outcome{}, err
	}
	state := instance.sessions.Resolve(path)

	result, err := search.Scan(path, pattern, isRegex, state.CursorLine)
	if err != nil {
		return Outcome{}, err
	}

	state.Search = &session.ActiveSearch{
		Pattern: pattern,
		IsRegex: isRegex,
		Matches: result.Matches,
		Cursor:  result.Landed,
	}
	if result.Landed == -1 {
		return Outcome{
			Kind: InfoOutcome,
			Text: fmt.Sprintf("Pattern not found: %s", pattern),
		}, nil
	}

	state.CursorLine = clamp(result.Matches[result.Landed].Number, 1, total)
	header := fmt.Sprintf("Found match %d of %d", result.Landed+1, len(result.Matches))
	return instance.renderWithHeader(path, state, total, header)
}

func (instance *Navigator) NextMatch(path string) (Outcome, error) {
	return instance.cycleMatch(path, 1)
}

func (instance *Navigator) PrevMatch(path string) (Outcome, error) {
	return instance.cycleMatch(path, -1)
}

func (instance *Navigator) cycleMatch(path string, step int) (Outcome, error) {
	state := instance.sessions.Resolve(path)
	if state.Search == nil || len(state.Search.Matches) == 0 {
		return Outcome{
			Kind: InfoOutcome,
			Text: "No active search. Use find first.",
		}, nil
	}

	total, err := stream.TotalLines(path)
	if err != nil {
		return Outcome{}, err
	}

	length := len(state.Search.Matches)
	state.Search.Cursor = ((state.Search.Cursor+step)%length + length) % length
	match := state.Search.Matches[state.Search.Cursor]
	state.CursorLine = clamp(match.Number, 1, total)

	header := fmt.Sprintf("Match %d of %d", state.Search.Cursor+1, length)
	return instance.renderWithHeader(path, state, total, header)
}

func (instance *Navigator) renderAt(path string, state *session.State, total int) (Outcome, error) {
	lines, err := stream.Window(path, state.CursorLine, state.PageSize)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Kind: ScreenOutcome,
		Text: screen.Render(lines, total, state.PageSize),
	}, nil
}

func (instance *Navigator) renderWithHeader(path string, state *session.State, total int, header string) (Outcome, error) {
	outcome, err := instance.renderAt(path, state, total)
	if err != nil {
		return Outcome{}, err
	}
	outcome.Text = header + "\n" + outcome.Text
	return outcome, nil
}

func clamp(value int, low int, high int) int {
	if high < low {
		high = low
	}
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
