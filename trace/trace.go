// Package trace provides a decorator for the ril.WriteFunc/ril.ReadFunc
// transport callbacks that logs each line of AT traffic as it completes.
package trace

import (
	"log"

	"github.com/warthog618/ril"
)

// Trace decorates a ril.WriteFunc/ril.ReadFunc pair, buffering each side
// until a line terminator is seen and then logging the accumulated line.
type Trace struct {
	write ril.WriteFunc
	read  ril.ReadFunc
	l     *log.Logger
	wfmt  string
	rfmt  string
	wbuf  []byte
	rbuf  []byte
}

// Option modifies a Trace object created by New.
type Option func(*Trace)

// New creates a new Trace decorating write and read.
func New(write ril.WriteFunc, read ril.ReadFunc, l *log.Logger, opts ...Option) *Trace {
	t := &Trace{write: write, read: read, l: l, wfmt: "w: %s", rfmt: "r: %s"}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ReadFormat sets the format used for read logs.
func ReadFormat(format string) Option {
	return func(t *Trace) {
		t.rfmt = format
	}
}

// WriteFormat sets the format used for write logs.
func WriteFormat(format string) Option {
	return func(t *Trace) {
		t.wfmt = format
	}
}

// WriteFunc returns the ril.WriteFunc to pass to ril.NewState/ril.NewCmd;
// it forwards to the decorated write and logs each line once a '\n' (or a
// write error) completes it.
func (t *Trace) WriteFunc() ril.WriteFunc {
	return func(b byte) error {
		err := t.write(b)
		t.wbuf = append(t.wbuf, b)
		if b == '\n' || err != nil {
			t.l.Printf(t.wfmt, t.wbuf)
			t.wbuf = t.wbuf[:0]
		}
		return err
	}
}

// ReadFunc returns the ril.ReadFunc to pass to ril.NewState/ril.NewRsp; it
// forwards to the decorated read and logs each line once a '\n' completes
// it.
func (t *Trace) ReadFunc() ril.ReadFunc {
	return func(timeoutMs int) (int, error) {
		n, err := t.read(timeoutMs)
		if err != nil {
			return n, err
		}
		b := byte(n)
		t.rbuf = append(t.rbuf, b)
		if b == '\n' {
			t.l.Printf(t.rfmt, t.rbuf)
			t.rbuf = t.rbuf[:0]
		}
		return n, nil
	}
}
