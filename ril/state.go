// Package ril provides a byte-oriented AT-command formatter and response
// parser for GSM/GPRS modems.
//
// It implements two small, cooperating engines over a shared State: Cmd
// formats outbound AT commands via a printf-like mini-language, and Rsp
// parses inbound byte streams via a scanf-like mini-language. Both engines
// are single-threaded. The look-ahead buffer has the caller-chosen size and
// never grows; it is not the only allocation, since primitives that format
// numbers or return strings and captured values allocate small slices of
// their own. Transport, retries and command sequencing are left to the
// caller.
package ril

import "errors"

// WriteFunc writes a single byte to the modem. A non-nil error is treated
// as an I/O failure and sets KindCmdWrite on the State.
type WriteFunc func(b byte) error

// ReadFunc reads a single byte from the modem, waiting up to timeoutMs.
//
// The first call for each byte passes the State's full timeout; if the
// byte isn't available the function may return ErrReadWouldBlock, in which
// case it is called again with a timeoutMs of 0 to indicate the deadline it
// armed on the first call still applies. It returns ErrReadTimeout once
// that deadline has passed. The deadline is armed afresh for every byte
// fetched, not once per primitive, and the State keeps no clock of its own.
type ReadFunc func(timeoutMs int) (int, error)

// Sentinel errors returned by a ReadFunc.
var (
	// ErrReadWouldBlock indicates no byte is available yet; the caller
	// should retry, respecting the previously armed deadline.
	ErrReadWouldBlock = errors.New("ril: read would block")
	// ErrReadTimeout indicates the armed deadline has elapsed with no
	// byte available.
	ErrReadTimeout = errors.New("ril: read timeout")
)

// State is the stateful entity shared by a Cmd and Rsp engine: a sticky
// first-error, the CME/CMS numeric code of that error (if any), the two
// transport callbacks, and a bounded read-ahead buffer.
//
// State is not safe for concurrent use; an owner must serialise access,
// typically by running one AT transaction at a time.
type State struct {
	err   Kind
	cmErr int

	write WriteFunc
	read  ReadFunc

	buf   []byte
	count int
	index int

	timeout int // milliseconds
}

// NewState creates a State backed by the given transport callbacks and a
// fixed-size look-ahead buffer of bufMax bytes.
//
// Either callback may be nil if the State is only used for the Cmd or
// only for the Rsp side (as Cmd and Rsp test harnesses do independently);
// a production AT transaction supplies both.
func NewState(write WriteFunc, read ReadFunc, bufMax int) *State {
	return &State{
		write: write,
		read:  read,
		buf:   make([]byte, bufMax),
	}
}

// Reset clears the sticky error and CME/CMS code, readying the State for
// a new AT transaction. It does not discard any buffered look-ahead.
func (s *State) Reset() {
	s.err = KindNone
	s.cmErr = 0
}

// Err returns the current sticky error Kind, or KindNone if the State is
// healthy.
func (s *State) Err() Kind {
	return s.err
}

// CMErr returns the numeric code from a +CME ERROR or +CMS ERROR final
// response. It is only meaningful when Err() is KindRspFinalCME or
// KindRspFinalCMS.
func (s *State) CMErr() int {
	return s.cmErr
}

// SetTimeout sets the deadline, in milliseconds, passed to the ReadFunc
// for each blocking read operation that follows.
func (s *State) SetTimeout(ms int) {
	s.timeout = ms
}

// fail sets the sticky error, if not already set, and returns the
// canonical zero-byte failure count.
func (s *State) fail(k Kind) int {
	if s.err == KindNone {
		s.err = k
	}
	return 0
}

// ensure guarantees that at least n unconsumed look-ahead bytes are
// available starting at index, fetching and, if necessary, compacting the
// buffer. onTimeout is the Kind reported if the deadline elapses before n
// bytes arrive.
func (s *State) ensure(n int, onTimeout Kind) bool {
	if s.err != KindNone {
		return false
	}
	for s.count-s.index < n {
		if s.count == len(s.buf) {
			if s.index == 0 {
				s.fail(KindReadOverflow)
				return false
			}
			copy(s.buf, s.buf[s.index:s.count])
			s.count -= s.index
			s.index = 0
		}
		b, err := s.fetchByte()
		if err != nil {
			if errors.Is(err, ErrReadTimeout) {
				s.fail(onTimeout)
			} else {
				s.fail(KindReadGeneral)
			}
			return false
		}
		s.buf[s.count] = b
		s.count++
	}
	return true
}

// fetchByte pulls one byte from the transport, retrying across
// ErrReadWouldBlock until the read callback itself reports ErrReadTimeout
// or a byte arrives.
func (s *State) fetchByte() (byte, error) {
	ms := s.timeout
	for {
		n, err := s.read(ms)
		ms = 0
		if err == nil {
			return byte(n), nil
		}
		if errors.Is(err, ErrReadWouldBlock) {
			continue
		}
		return 0, err
	}
}

// byteAt returns the i'th unconsumed look-ahead byte (0 is the next byte
// to be read). The caller must have already ensured i+1 bytes are
// available.
func (s *State) byteAt(i int) byte {
	return s.buf[s.index+i]
}

// advance consumes n look-ahead bytes.
func (s *State) advance(n int) {
	s.index += n
}

// writeByte emits a single byte via the write callback.
func (s *State) writeByte(b byte) int {
	if s.err != KindNone {
		return 0
	}
	if err := s.write(b); err != nil {
		return s.fail(KindCmdWrite)
	}
	return 1
}

// Cmd is a view over a shared State used to format outbound AT command
// bytes.
type Cmd struct {
	*State
}

// Rsp is a view over a shared State used to parse inbound response bytes.
type Rsp struct {
	*State
}

// NewCmd creates a standalone Cmd, for use where only command formatting
// is required (such as isolated unit tests).
func NewCmd(write WriteFunc) *Cmd {
	return &Cmd{NewState(write, nil, 0)}
}

// NewRsp creates a standalone Rsp, for use where only response parsing is
// required (such as isolated unit tests).
func NewRsp(read ReadFunc, bufMax int) *Rsp {
	return &Rsp{NewState(nil, read, bufMax)}
}
