package listener

import (
	"bytes"
	"io"
)

// lineEndings translates between the network's line endings and the plain
// \n the console reads and writes.
type lineEndings struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &lineEndings{rw: rw}
}

var inboundEndings = []struct{ from, to []byte }{
	{[]byte("\r\n"), []byte("\n")},
	// Telnet clients in binary-less mode pad a bare CR with NUL.
	{[]byte("\r\x00"), []byte("\n")},
	// SSH without a PTY and some raw clients send a lone CR.
	{[]byte("\r"), []byte("\n")},
}

func (l *lineEndings) Read(p []byte) (int, error) {
	n, err := l.rw.Read(p)
	if n > 0 {
		data := p[:n]
		for _, e := range inboundEndings {
			data = bytes.ReplaceAll(data, e.from, e.to)
		}
		n = copy(p, data)
	}
	return n, err
}

func (l *lineEndings) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := l.rw.Write(converted)
	// Report the caller's length, not the converted one.
	return len(p), err
}
