// Package logging installs the bot's line format on the standard logger:
// every line is "[YYYY-MM-DD HH:MM:SS] message", written to the console and
// appended to a log file.
package logging

import (
	"bytes"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Writer prefixes each line written to it with a bracketed timestamp.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

func NewWriter(out io.Writer, now func() time.Time) *Writer {
	if now == nil {
		now = time.Now
	}
	return &Writer{out: out, now: now}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var buf bytes.Buffer
	ts := "[" + w.now().Format(timestampLayout) + "] "
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		buf.WriteString(ts)
		buf.Write(line)
	}
	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Setup points the standard logger at stdout and the file at path. The
// returned closer releases the file. If the file can't be opened the logger
// writes to stdout only.
func Setup(path string) io.Closer {
	log.SetFlags(0)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(NewWriter(os.Stdout, nil))
		log.Printf("⚠️ Could not open log file %s: %v. Logging to console only.", path, err)
		return io.NopCloser(nil)
	}

	log.SetOutput(NewWriter(io.MultiWriter(os.Stdout, f), nil))
	return f
}
