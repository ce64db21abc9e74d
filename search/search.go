package search

import (
	navicodeerror "NaviCode/NaviCodeError"
	"NaviCode/stream"
	"fmt"
	"regexp"
)

// MatchCap bounds how many matches one search retains. Scanning stops as
// soon as the cap is reached, so files with more matching lines undercount.
const MatchCap = 1000

type Result struct {
	Matches []stream.Line
	// Landed is the index of the first match at or after the cursor,
	// wrapping to 0 when every match lies before it. -1 without matches.
	Landed int
}

// Compile turns the pattern into a case-insensitive regexp. Literal patterns
// have every metacharacter escaped first.
func Compile(pattern string, isRegex bool) (*regexp.Regexp, error) {
	if !isRegex {
		pattern = regexp.QuoteMeta(pattern)
	}
	compiled, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, navicodeerror.Wrap(err, navicodeerror.InvalidPattern, fmt.Sprintf("invalid pattern: %s", pattern))
	}
	return compiled, nil
}

// Scan walks the file once, collecting matching lines up to MatchCap.
// The pattern is compiled before the file is touched, so a malformed regex
// never opens the file.
func Scan(path string, pattern string, isRegex bool, cursorLine int) (Result, error) {
	compiled, err := Compile(pattern, isRegex)
	if err != nil {
		return Result{}, err
	}

	iter, err := stream.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer iter.Close()

	matches := make([]stream.Line, 0)
	landed := -1
	for line, ok := iter.Next(); ok; line, ok = iter.Next() {
		if !compiled.MatchString(line.Content) {
			continue
		}
		matches = append(matches, line)
		if landed == -1 && line.Number >= cursorLine {
			landed = len(matches) - 1
		}
		if len(matches) >= MatchCap {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return Result{}, err
	}

	if landed == -1 && len(matches) > 0 {
		landed = 0
	}
	return Result{Matches: matches, Landed: landed}, nil
}
