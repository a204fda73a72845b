package stdio

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestReadMessage(t *testing.T) {
	reader := NewReader(strings.NewReader("{\"method\":\"initialize\"}\n{\"method\":\"tools/list\"}\n"))

	first, err := reader.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	if string(first) != `{"method":"initialize"}` {
		t.Errorf("unexpected first line: %s", first)
	}

	second, err := reader.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	if string(second) != `{"method":"tools/list"}` {
		t.Errorf("unexpected second line: %s", second)
	}

	if _, err := reader.ReadMessage(); err != io.EOF {
		t.Errorf("expected io.EOF after last line, got %v", err)
	}
}

func TestReadMessage_SkipsBlankLines(t *testing.T) {
	reader := NewReader(strings.NewReader("\n\n  \r\n{\"method\":\"initialize\"}\n\n"))

	msg, err := reader.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	if string(msg) != `{"method":"initialize"}` {
		t.Errorf("unexpected line: %s", msg)
	}

	if _, err := reader.ReadMessage(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadMessage_DeliversUnterminatedFinalLine(t *testing.T) {
	reader := NewReader(strings.NewReader(`{"method":"initialize"}`))

	msg, err := reader.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	if string(msg) != `{"method":"initialize"}` {
		t.Errorf("unexpected line: %s", msg)
	}

	if _, err := reader.ReadMessage(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadMessage_Errors(t *testing.T) {
	// Empty stream (EOF)
	reader := NewReader(&bytes.Buffer{})
	if _, err := reader.ReadMessage(); err != io.EOF {
		t.Errorf("expected io.EOF on empty stream, got %v", err)
	}
}
