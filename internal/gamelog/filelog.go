// Package gamelog writes the human-readable play-by-play file.
package gamelog

import (
	"fmt"
	"io"
	"os"

	"ballsim/internal/game"
)

const Header = "Baseball Game Log\n\n"

// Format renders one at-bat as the fixed three-line record plus a blank line.
func Format(e game.Entry) string {
	return fmt.Sprintf("Inning %d (%s): %s - %s\nScore: %s %d, %s %d\nOuts: %d, Bases: %s\n\n",
		e.Inning, e.Half, e.Batter, e.Outcome,
		e.Team1, e.Team1Score, e.Team2, e.Team2Score,
		e.Outs, e.Bases)
}

// Log appends records to an io.Writer. The first write error is kept and
// returned by every later call.
type Log struct {
	w   io.Writer
	n   int
	err error
}

func New(w io.Writer) (*Log, error) {
	l := &Log{w: w}
	if _, err := io.WriteString(w, Header); err != nil {
		return nil, fmt.Errorf("write log header: %w", err)
	}
	return l, nil
}

func (l *Log) Record(e game.Entry) error {
	if l.err != nil {
		return l.err
	}
	if _, err := io.WriteString(l.w, Format(e)); err != nil {
		l.err = fmt.Errorf("append log entry %d: %w", e.Seq, err)
		return l.err
	}
	l.n++
	return nil
}

// Entries is the number of records written so far.
func (l *Log) Entries() int { return l.n }

// FileLog is a Log backed by a file truncated on open.
type FileLog struct {
	*Log
	f      *os.File
	closed bool
}

func Create(path string) (*FileLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open game log: %w", err)
	}
	l, err := New(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &FileLog{Log: l, f: f}, nil
}

func (fl *FileLog) Path() string { return fl.f.Name() }

// Close is safe to call more than once; only the first call closes the file.
func (fl *FileLog) Close() error {
	if fl.closed {
		return nil
	}
	fl.closed = true
	if err := fl.f.Close(); err != nil {
		return fmt.Errorf("close game log: %w", err)
	}
	return nil
}
