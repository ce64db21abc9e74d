package stream

// Window collects the lines whose 1-based position lies in
// [startLine, startLine+count) in a single forward pass, stopping as soon
// as the upper bound is passed. Fewer lines come back when the window runs
// past end of file.
func Window(path string, startLine int, count int) ([]Line, error) {
	iter, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	lines := make([]Line, 0, count)
	for line, ok := iter.Next(); ok; line, ok = iter.Next() {
		if line.Number >= startLine+count {
			break
		}
		if line.Number >= startLine {
			lines = append(lines, line)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// TotalLines counts the lines of the file in one full pass. No caching: a
// file modified between calls is always read fresh.
func TotalLines(path string) (int, error) {
	iter, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	total := 0
	for _, ok := iter.Next(); ok; _, ok = iter.Next() {
		total++
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	return total, nil
}
