package prompt

import (
	"errors"
	"io"
	"strings"
)

// LineSource yields one line of user input per call, without the trailing
// newline. Implementations return io.EOF once the source is exhausted;
// Display maps that to an empty answer rather than terminating. Sources are
// borrowed: nothing in this package ever closes one.
type LineSource interface {
	ReadLine() (string, error)
}

// NewReaderSource wraps r in a line source. It reads byte-wise so nothing
// past the returned line's newline is ever consumed from r.
func NewReaderSource(r io.Reader) LineSource {
	return &readerSource{r: r}
}

type readerSource struct {
	r   io.Reader
	buf [1]byte
}

func (s *readerSource) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			if s.buf[0] == '\n' {
				return strings.TrimSuffix(sb.String(), "\r"), nil
			}
			sb.WriteByte(s.buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() == 0 {
					return "", io.EOF
				}
				// final line without a newline
				return strings.TrimSuffix(sb.String(), "\r"), nil
			}
			return "", err
		}
	}
}
