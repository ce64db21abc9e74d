package stream

import (
	navicodeerror "NaviCode/NaviCodeError"
	"bufio"
	"fmt"
	"os"
)

const (
	initialBufferSize = 64 * 1024
	maxLineSize       = 1024 * 1024
)

type Line struct {
	Number  int
	Content string
}

// Open starts an independent pass over the file. Every call reads from the
// start; no cursor is shared between iterators. The caller owns Close.
func Open(path string) (*LineIter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, navicodeerror.Wrap(err, navicodeerror.FileNotFound, fmt.Sprintf("cannot open file: %s", path))
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)
	return &LineIter{
		file:    file,
		path:    path,
		scanner: scanner,
	}, nil
}

type LineIter struct {
	file    *os.File
	path    string
	scanner *bufio.Scanner
	number  int
	closed  bool
}

// Next yields the following line, false once the file is exhausted or an
// I/O error occurred. A final line without a trailing newline is still yielded.
func (instance *LineIter) Next() (Line, bool) {
	if instance.closed || !instance.scanner.Scan() {
		return Line{}, false
	}
	instance.number++
	return Line{Number: instance.number, Content: instance.scanner.Text()}, true
}

// Err reports the first read failure of the pass, a line exceeding the
// buffer bound included, wrapped so the boundary can classify it.
func (instance *LineIter) Err() error {
	if err := instance.scanner.Err(); err != nil {
		return navicodeerror.Wrap(err, navicodeerror.FileUnreadable, fmt.Sprintf("cannot read file: %s", instance.path))
	}
	return nil
}

func (instance *LineIter) Close() error {
	if instance.closed {
		return nil
	}
	instance.closed = true
	return instance.file.Close()
}
