package tml

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.tmlkit.dev/tml/value"
)

// ErrStreamDone is returned by [LineScanner.Next] once input is exhausted.
var ErrStreamDone = errors.New("tml: no more entries")

// LineScanner is the streaming counterpart of [Parse]: it exposes one
// name/value pair plus its indentation depth at a time, without
// materializing the full tree. Useful for callers that want to consume a
// document without the tree-assembly allocation.
type LineScanner struct {
	sc   *bufio.Scanner
	p    *parser
	done bool
}

// NewLineScanner wraps r as a [LineScanner]. filename is used for
// provenance in returned positions and errors.
func NewLineScanner(r io.Reader, filename string) *LineScanner {
	if filename == "" {
		filename = "<input>"
	}

	fn := value.NewFilename(filename)

	return &LineScanner{
		sc: bufio.NewScanner(r),
		p:  &parser{filename: fn},
	}
}

// Next returns the next pair and its depth, or [ErrStreamDone] once the
// input is exhausted, or a [*ParseError] on malformed input.
func (ls *LineScanner) Next() (value.Pair, int, error) {
	if ls.done {
		return value.Pair{}, 0, ErrStreamDone
	}

	if !ls.sc.Scan() {
		ls.done = true

		if err := ls.sc.Err(); err != nil {
			return value.Pair{}, 0, err
		}

		return value.Pair{}, 0, ErrStreamDone
	}

	ls.p.lineNo++
	line := strings.TrimSuffix(ls.sc.Text(), "\r")

	depth, content, col, err := ls.p.computeDepth(line)
	if err != nil {
		return value.Pair{}, 0, perr(ls.p.pos(col), err)
	}

	pos := ls.p.pos(col)

	switch {
	case content == "":
		return value.Pair{Name: value.None(pos), Val: value.None(pos), Depth: depth}, depth, nil
	case content[0] == '#':
		return value.Pair{Name: value.NewComment(content[1:], pos), Val: value.None(pos), Depth: depth}, depth, nil
	}

	pair, err := ls.p.parseContentLine(content, col)
	if err != nil {
		return value.Pair{}, 0, err
	}

	pair.Depth = depth

	return pair, depth, nil
}
