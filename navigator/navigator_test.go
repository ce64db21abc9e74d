package navigator

import (
	navicodeerror "NaviCode/NaviCodeError"
	"NaviCode/manager/session"
	"NaviCode/screen"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nav.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeNumberedFile writes totalLines lines of the form "Line N: <filler>",
// appending " FINDME" on every markerEvery-th line when markerEvery > 0.
func writeNumberedFile(t *testing.T, totalLines int, markerEvery int) string {
	t.Helper()
	var builder strings.Builder
	for number := 1; number <= totalLines; number++ {
		if markerEvery > 0 && number%markerEvery == 0 {
			fmt.Fprintf(&builder, "Line %d: FINDME\n", number)
		} else {
			fmt.Fprintf(&builder, "Line %d: filler\n", number)
		}
	}
	return writeTempFile(t, builder.String())
}

func newNavigator(pageSize int) (*Navigator, *session.SessionManager) {
	sessions := session.NewSessionManager(pageSize)
	return NewNavigator(sessions), sessions
}

func TestGoToLine_Clamping(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeNumberedFile(t, 10, 0)

	tests := []struct {
		name     string
		line     int
		expected int
	}{
		{name: "Inside the file", line: 7, expected: 7},
		{name: "Below one clamps to one", line: -5, expected: 1},
		{name: "Zero clamps to one", line: 0, expected: 1},
		{name: "Past end clamps to total", line: 9999, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := nav.GoToLine(path, tt.line, 0)
			require.NoError(t, err)
			assert.Equal(t, ScreenOutcome, outcome.Kind)
			assert.Equal(t, tt.expected, sessions.Resolve(path).CursorLine)
		})
	}
}

func TestGoToLine_Idempotent(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeNumberedFile(t, 10, 0)

	first, err := nav.GoToLine(path, 4, 0)
	require.NoError(t, err)
	second, err := nav.GoToLine(path, 4, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 4, sessions.Resolve(path).CursorLine)
}

func TestGoToLine_UpdatesPageSize(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeNumberedFile(t, 30, 0)

	outcome, err := nav.GoToLine(path, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, sessions.Resolve(path).PageSize)
	assert.Len(t, strings.Split(outcome.Text, "\n"), 10)
}

func TestGoToLine_EmptyFile(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "")

	outcome, err := nav.GoToLine(path, 42, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, sessions.Resolve(path).CursorLine)
	assert.Equal(t, screen.EmptyFileMarker, outcome.Text)
}

func TestGoToLine_MissingFile(t *testing.T) {
	nav, _ := newNavigator(5)

	_, err := nav.GoToLine("/nonexistent/path/file.txt", 1, 0)

	assert.Equal(t, navicodeerror.FileNotFound, navicodeerror.CodeOf(err))
}

func TestPageUpDown(t *testing.T) {
	nav, sessions := newNavigator(10)
	path := writeNumberedFile(t, 45, 0)

	_, err := nav.GoToLine(path, 20, 0)
	require.NoError(t, err)

	_, err = nav.PageDown(path)
	require.NoError(t, err)
	assert.Equal(t, 30, sessions.Resolve(path).CursorLine)

	_, err = nav.PageUp(path)
	require.NoError(t, err)
	assert.Equal(t, 20, sessions.Resolve(path).CursorLine)
}

func TestPageUp_StopsAtFirstLine(t *testing.T) {
	nav, sessions := newNavigator(10)
	path := writeNumberedFile(t, 45, 0)

	_, err := nav.GoToLine(path, 3, 0)
	require.NoError(t, err)
	_, err = nav.PageUp(path)
	require.NoError(t, err)

	assert.Equal(t, 1, sessions.Resolve(path).CursorLine)
}

func TestPageDown_StopsAtTotalLines(t *testing.T) {
	nav, sessions := newNavigator(10)
	path := writeNumberedFile(t, 45, 0)

	_, err := nav.GoToLine(path, 44, 0)
	require.NoError(t, err)
	outcome, err := nav.PageDown(path)
	require.NoError(t, err)

	assert.Equal(t, 45, sessions.Resolve(path).CursorLine)
	assert.True(t, strings.HasSuffix(outcome.Text, "[END OF FILE - 45 lines total]"))
}

func TestFind_LandsOnFirstMatchAfterCursor(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "hay\nneedle\nhay\nneedle\n")

	outcome, err := nav.Find(path, "needle", false)

	require.NoError(t, err)
	assert.Equal(t, ScreenOutcome, outcome.Kind)
	assert.True(t, strings.HasPrefix(outcome.Text, "Found match 1 of 2\n"))
	assert.Equal(t, 2, sessions.Resolve(path).CursorLine)
}

func TestFind_NoMatches(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "hay\nhay\n")

	_, err := nav.GoToLine(path, 2, 0)
	require.NoError(t, err)
	outcome, err := nav.Find(path, "needle", false)

	require.NoError(t, err)
	assert.Equal(t, InfoOutcome, outcome.Kind)
	assert.Equal(t, "Pattern not found: needle", outcome.Text)

	state := sessions.Resolve(path)
	require.NotNil(t, state.Search)
	assert.Empty(t, state.Search.Matches)
	assert.Equal(t, -1, state.Search.Cursor)
	assert.Equal(t, 2, state.CursorLine)
}

func TestFind_ReplacesActiveSearch(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "alpha\nbeta\nalpha\n")

	_, err := nav.Find(path, "alpha", false)
	require.NoError(t, err)
	_, err = nav.Find(path, "beta", false)
	require.NoError(t, err)

	state := sessions.Resolve(path)
	assert.Equal(t, "beta", state.Search.Pattern)
	assert.Len(t, state.Search.Matches, 1)
}

func TestFind_InvalidPatternKeepsPriorSearch(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "alpha\nbeta\n")

	_, err := nav.Find(path, "alpha", false)
	require.NoError(t, err)
	_, err = nav.Find(path, "[unclosed", true)

	assert.Equal(t, navicodeerror.InvalidPattern, navicodeerror.CodeOf(err))
	assert.Equal(t, "alpha", sessions.Resolve(path).Search.Pattern)
}

func TestNextMatch_WithoutActiveSearch(t *testing.T) {
	nav, _ := newNavigator(5)
	path := writeTempFile(t, "hay\n")

	outcome, err := nav.NextMatch(path)

	require.NoError(t, err)
	assert.Equal(t, InfoOutcome, outcome.Kind)
	assert.Equal(t, "No active search. Use find first.", outcome.Text)
}

func TestPrevMatch_WithoutActiveSearch(t *testing.T) {
	nav, _ := newNavigator(5)
	path := writeTempFile(t, "hay\n")

	outcome, err := nav.PrevMatch(path)

	require.NoError(t, err)
	assert.Equal(t, InfoOutcome, outcome.Kind)
}

func TestNextMatch_AfterNoMatchFind(t *testing.T) {
	nav, _ := newNavigator(5)
	path := writeTempFile(t, "hay\n")

	_, err := nav.Find(path, "needle", false)
	require.NoError(t, err)
	outcome, err := nav.NextMatch(path)

	require.NoError(t, err)
	assert.Equal(t, InfoOutcome, outcome.Kind)
}

func TestMatchCycling(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "needle\nhay\nneedle\nhay\nneedle\n")

	_, err := nav.Find(path, "needle", false)
	require.NoError(t, err)
	state := sessions.Resolve(path)
	assert.Equal(t, 1, state.CursorLine)

	outcome, err := nav.NextMatch(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(outcome.Text, "Match 2 of 3\n"))
	assert.Equal(t, 3, state.CursorLine)

	_, err = nav.NextMatch(path)
	require.NoError(t, err)
	assert.Equal(t, 5, state.CursorLine)

	// Cyclic: advancing past the last match wraps to the first.
	outcome, err = nav.NextMatch(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(outcome.Text, "Match 1 of 3\n"))
	assert.Equal(t, 1, state.CursorLine)

	// And retreating from the first wraps to the last.
	_, err = nav.PrevMatch(path)
	require.NoError(t, err)
	assert.Equal(t, 5, state.CursorLine)
}

func TestMatchCycling_ClosesAfterFullLoop(t *testing.T) {
	nav, sessions := newNavigator(5)
	path := writeTempFile(t, "needle\nhay\nneedle\nneedle\nhay\nneedle\n")

	_, err := nav.Find(path, "needle", false)
	require.NoError(t, err)
	state := sessions.Resolve(path)
	landed := state.CursorLine

	for cycle := 0; cycle < len(state.Search.Matches); cycle++ {
		_, err = nav.NextMatch(path)
		require.NoError(t, err)
	}

	assert.Equal(t, landed, state.CursorLine)
}

func TestScenario_FindEveryThousandthLine(t *testing.T) {
	nav, sessions := newNavigator(20)
	path := writeNumberedFile(t, 100000, 1000)

	outcome, err := nav.Find(path, "FINDME", false)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(outcome.Text, "Found match 1 of 100\n"))
	assert.Equal(t, 1000, sessions.Resolve(path).CursorLine)

	outcome, err = nav.NextMatch(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(outcome.Text, "Match 2 of 100\n"))
	assert.Equal(t, 2000, sessions.Resolve(path).CursorLine)
}

func TestScenario_GoToLineFarPastEnd(t *testing.T) {
	nav, sessions := newNavigator(20)
	path := writeNumberedFile(t, 100000, 0)

	outcome, err := nav.GoToLine(path, 500000, 0)

	require.NoError(t, err)
	assert.Equal(t, 100000, sessions.Resolve(path).CursorLine)
	assert.True(t, strings.HasSuffix(outcome.Text, "[END OF FILE - 100000 lines total]"))
}

func TestScenario_FourDigitRegexUndercountsAtCap(t *testing.T) {
	nav, sessions := newNavigator(20)
	path := writeNumberedFile(t, 100000, 0)

	outcome, err := nav.Find(path, `Line \d{4}:`, true)

	require.NoError(t, err)
	// Lines 1000-9999 match the four-digit pattern; the cap keeps the
	// first 1000 of them and the scan stops there.
	assert.True(t, strings.HasPrefix(outcome.Text, "Found match 1 of 1000\n"))
	state := sessions.Resolve(path)
	assert.Equal(t, 1000, state.CursorLine)
	assert.Equal(t, 1999, state.Search.Matches[len(state.Search.Matches)-1].Number)
}
