// Package ublox provides AT verb shims for U-blox SARA modems, composed
// from the ril.Cmd/ril.Rsp mini-languages.
//
// Every shim issues one AT command and parses its response, translating
// the core's sticky ril.Kind into an idiomatic Go error: this package is
// the boundary where that translation happens, so callers elsewhere never
// see a bare Kind.
package ublox

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/warthog618/ril"
)

// Modem is a U-blox SARA modem reachable via a shared ril.State: a Cmd
// view for formatting outbound commands and a Rsp view for parsing the
// responses they provoke.
type Modem struct {
	Cmd *ril.Cmd
	Rsp *ril.Rsp
}

// New creates a Modem bound to the given transport callbacks, with a
// look-ahead buffer of bufMax bytes.
func New(write ril.WriteFunc, read ril.ReadFunc, bufMax int) *Modem {
	s := ril.NewState(write, read, bufMax)
	return &Modem{Cmd: &ril.Cmd{State: s}, Rsp: &ril.Rsp{State: s}}
}

// SetTimeout sets the per-operation deadline passed to the ReadFunc.
func (m *Modem) SetTimeout(ms int) {
	m.Cmd.SetTimeout(ms)
}

// err converts the shared State's sticky Kind into an error, wrapping
// +CME/+CMS final responses in their typed counterparts and clearing the
// State so the next command starts clean.
func (m *Modem) err(cmdName string) error {
	k := m.Cmd.Err()
	if k == ril.KindNone {
		return nil
	}
	var err error
	switch k {
	case ril.KindRspFinalCME:
		err = ril.CMEError(strconv.Itoa(m.Cmd.CMErr()))
	case ril.KindRspFinalCMS:
		err = ril.CMSError(strconv.Itoa(m.Cmd.CMErr()))
	default:
		err = k
	}
	m.Cmd.Reset()
	return errors.Wrapf(err, "ril/ublox: %s", cmdName)
}

// echoAndOK consumes the command's local echo line and the trailing OK,
// the framing common to every shim that returns only an error.
func (m *Modem) echoAndOK() {
	m.Rsp.Echo()
	m.Rsp.ResOK()
}

// readIntParam issues "AT<cmd>?\r\n" and parses the "<cmd>: <n>" response,
// the common shape of the simple single-integer read verbs.
func (m *Modem) readIntParam(cmd string) int {
	m.Cmd.Query([]byte(cmd))
	m.Rsp.Echo()
	_, v := m.Rsp.Query([]byte(cmd))
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return v
}

// setIntParam issues "AT<cmd>=<n>\r\n" and consumes the echo/OK framing.
func (m *Modem) setIntParam(cmd string, n int) {
	m.Cmd.Set([]byte(cmd))
	m.Cmd.Int(n)
	m.Cmd.EOL()
	m.echoAndOK()
}
