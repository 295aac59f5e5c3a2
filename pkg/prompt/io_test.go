package prompt_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-prompter/pkg/prompt"
)

func TestReaderSourceSplitsLines(t *testing.T) {
	src := prompt.NewReaderSource(strings.NewReader("one\ntwo\r\nthree"))

	for _, want := range []string{"one", "two", "three"} {
		got, err := src.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Fatalf("ReadLine = %q, want %q", got, want)
		}
	}

	if _, err := src.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("exhausted source error = %v, want io.EOF", err)
	}
}

func TestReaderSourceLeavesLaterBytesUnread(t *testing.T) {
	reader := strings.NewReader("a\nrest\n")
	src := prompt.NewReaderSource(reader)

	got, err := src.ReadLine()
	if err != nil || got != "a" {
		t.Fatalf("ReadLine = %q, %v", got, err)
	}
	if reader.Len() != len("rest\n") {
		t.Fatalf("reader has %d unread bytes, want %d", reader.Len(), len("rest\n"))
	}
}

func TestReaderSourceEmptyLines(t *testing.T) {
	src := prompt.NewReaderSource(strings.NewReader("\n\nx\n"))

	for _, want := range []string{"", "", "x"} {
		got, err := src.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Fatalf("ReadLine = %q, want %q", got, want)
		}
	}
}

type faultyReader struct{}

func (faultyReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestReaderSourcePropagatesReadFaults(t *testing.T) {
	src := prompt.NewReaderSource(faultyReader{})

	if _, err := src.ReadLine(); err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("fault error = %v, want non-EOF failure", err)
	}
}
