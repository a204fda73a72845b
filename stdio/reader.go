// Package stdio frames newline-delimited JSON messages on a byte stream:
// one complete JSON value per line, no buffering between messages.
package stdio

import (
	"bufio"
	"bytes"
	"io"
)

type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadMessage returns the next non-blank line with surrounding whitespace
// trimmed. Blank lines are skipped rather than treated as end-of-stream; a
// genuine stream closure surfaces as io.EOF. A final unterminated line is
// still delivered before EOF.
func (r *Reader) ReadMessage() ([]byte, error) {
	for {
		line, err := r.r.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			return line, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
