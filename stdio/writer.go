package stdio

import (
	"encoding/json"
	"io"
)

type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMessage serializes msg and emits it as one newline-terminated line in
// a single Write call, so the consumer on the other end of the pipe sees a
// complete frame with no buffering delay.
func (w *Writer) WriteMessage(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	if _, err := w.w.Write(data); err != nil {
		return err
	}

	return nil
}
