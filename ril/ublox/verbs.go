package ublox

import (
	"strconv"

	"github.com/warthog618/ril"
)

// This file implements the ETSI/3GPP AT verb shims named in spec.md
// §4.9, each a thin Cmd-format/Rsp-parse round trip grounded on
// original_source/libril/tests/Ril.py and testRil.py (exact wire
// strings and response shapes).

// Charset is the AT+CSCS terminal character set.
type Charset int

// The character sets a SARA modem accepts for AT+CSCS, in the order
// original_source's test fixture implies ("IRA" resolves to index 4).
const (
	CharsetGSM Charset = iota
	CharsetHex
	CharsetPCCP437
	Charset8859
	CharsetIRA
	CharsetUCS2
)

var charsetEntries = []struct {
	charset Charset
	name    string
}{
	{Charset8859, "8859-1"},
	{CharsetGSM, "GSM"},
	{CharsetHex, "HEX"},
	{CharsetIRA, "IRA"},
	{CharsetPCCP437, "PCCP437"},
	{CharsetUCS2, "UCS2"},
}

func charsetName(c Charset) string {
	for _, e := range charsetEntries {
		if e.charset == c {
			return e.name
		}
	}
	return ""
}

//--- General operation -----------------------------------------------------//

// CGMRRead reads the modem's firmware version.
func (m *Modem) CGMRRead() (string, error) {
	m.Cmd.AtC([]byte("+CGMR"))
	m.Cmd.EOL()
	m.Rsp.Echo()
	_, v := m.Rsp.ResOKStr()
	return string(v), m.err("AT+CGMR")
}

// CCIDRead reads the SIM's ICCID.
func (m *Modem) CCIDRead() (string, error) {
	m.Cmd.AtC([]byte("+CCID"))
	m.Cmd.EOL()
	m.Rsp.Echo()
	_, line := m.Rsp.ResOKStr()
	ccid := trimPrefix(line, "+CCID: ")
	return string(ccid), m.err("AT+CCID")
}

//--- General ---------------------------------------------------------------//

var charsetClass = ril.ParseCharClass([]byte("A-Z0-9-"))

var charsetStra = func() []ril.StraEntry {
	entries := make([]ril.StraEntry, len(charsetEntries))
	for i, e := range charsetEntries {
		entries[i] = ril.StraEntry{Index: int(e.charset), Text: []byte(e.name)}
	}
	return entries
}()

// CSCSRead reads the current terminal character set.
func (m *Modem) CSCSRead() (Charset, error) {
	m.Cmd.Query([]byte("+CSCS"))
	m.Rsp.Echo()
	m.Rsp.Str([]byte(`+CSCS: "`))
	idx := m.Rsp.Stra(charsetClass, charsetStra)
	m.Rsp.Char('"')
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return Charset(idx), m.err("AT+CSCS?")
}

// CSCSSet sets the terminal character set.
func (m *Modem) CSCSSet(cs Charset) error {
	m.Cmd.Set([]byte("+CSCS"))
	m.Cmd.StrQ([]byte(charsetName(cs)), '"')
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("AT+CSCS=")
}

//--- Mobile equipment control and status ------------------------------------//

// CMERRead reads the mobile-equipment event reporting configuration:
// mode, the unsolicited-result-code indicator routing and the buffering
// behaviour. The keypad/display fields are fixed at 0 by this modem
// family and are not returned.
func (m *Modem) CMERRead() (mode, ind, bfr int, err error) {
	m.Cmd.Query([]byte("+CMER"))
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+CMER: "))
	mode, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	m.Rsp.Int() // keyp, unused
	m.Rsp.Char(',')
	m.Rsp.Int() // disp, unused
	m.Rsp.Char(',')
	ind, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	bfr, _ = m.Rsp.Int()
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return mode, ind, bfr, m.err("AT+CMER?")
}

// CMERSet sets the mobile-equipment event reporting configuration. The
// keypad/display fields are always sent as 0.
func (m *Modem) CMERSet(mode, ind, bfr int) error {
	m.Cmd.Set([]byte("+CMER"))
	m.Cmd.Int(mode)
	m.Cmd.Char(',')
	m.Cmd.Int(0)
	m.Cmd.Char(',')
	m.Cmd.Int(0)
	m.Cmd.Char(',')
	m.Cmd.Int(ind)
	m.Cmd.Char(',')
	m.Cmd.Int(bfr)
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("AT+CMER=")
}

// Clock is the modem's real-time clock, as reported by AT+CCLK.
// Timezone is the offset from UTC in minutes.
type Clock struct {
	Year, Month, Day       int
	Hours, Minutes, Second int
	Timezone               int
}

// CCLKRead reads the modem's real-time clock.
func (m *Modem) CCLKRead() (Clock, error) {
	var c Clock
	m.Cmd.Query([]byte("+CCLK"))
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+CCLK: \""))
	yy, _ := m.Rsp.CharN(2)
	m.Rsp.Char('/')
	mm, _ := m.Rsp.CharN(2)
	m.Rsp.Char('/')
	dd, _ := m.Rsp.CharN(2)
	m.Rsp.Char(',')
	hh, _ := m.Rsp.CharN(2)
	m.Rsp.Char(':')
	mn, _ := m.Rsp.CharN(2)
	m.Rsp.Char(':')
	ss, _ := m.Rsp.CharN(2)
	tzSign, _ := m.Rsp.CharN(1)
	tz, _ := m.Rsp.CharN(2)
	m.Rsp.Char('"')
	m.Rsp.EOL()
	m.Rsp.ResOK()
	if err := m.err("AT+CCLK?"); err != nil {
		return Clock{}, err
	}
	c.Year = 2000 + atoi2(yy)
	c.Month = atoi2(mm)
	c.Day = atoi2(dd)
	c.Hours = atoi2(hh)
	c.Minutes = atoi2(mn)
	c.Second = atoi2(ss)
	units := atoi2(tz)
	if len(tzSign) == 1 && tzSign[0] == '-' {
		units = -units
	}
	c.Timezone = units * 15
	return c, nil
}

// CCLKSet sets the modem's real-time clock.
func (m *Modem) CCLKSet(c Clock) error {
	m.Cmd.Set([]byte("+CCLK"))
	m.Cmd.Char('"')
	m.Cmd.Printf([]byte("%02d"), c.Year-2000)
	m.Cmd.Char('/')
	m.Cmd.Printf([]byte("%02d"), c.Month)
	m.Cmd.Char('/')
	m.Cmd.Printf([]byte("%02d"), c.Day)
	m.Cmd.Char(',')
	m.Cmd.Printf([]byte("%02d"), c.Hours)
	m.Cmd.Char(':')
	m.Cmd.Printf([]byte("%02d"), c.Minutes)
	m.Cmd.Char(':')
	m.Cmd.Printf([]byte("%02d"), c.Second)
	m.Cmd.Printf([]byte("%+03d"), c.Timezone/15)
	m.Cmd.Char('"')
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("AT+CCLK=")
}

// CMEERead reads the +CME ERROR report mode.
func (m *Modem) CMEERead() (int, error) {
	n := m.readIntParam("+CMEE")
	return n, m.err("AT+CMEE?")
}

// CMEESet sets the +CME ERROR report mode.
func (m *Modem) CMEESet(n int) error {
	m.setIntParam("+CMEE", n)
	return m.err("AT+CMEE=")
}

//--- Network service ---------------------------------------------------//

// CGEDRead reads the cell information report mode.
func (m *Modem) CGEDRead() (int, error) {
	n := m.readIntParam("+CGED")
	return n, m.err("AT+CGED?")
}

// CGEDSet sets the cell information report mode.
func (m *Modem) CGEDSet(n int) error {
	m.setIntParam("+CGED", n)
	return m.err("AT+CGED=")
}

//--- Short Messages Service ----------------------------------------------//

// CMGFRead reads the SMS message format (0 = PDU, 1 = text).
func (m *Modem) CMGFRead() (int, error) {
	n := m.readIntParam("+CMGF")
	return n, m.err("AT+CMGF?")
}

// CMGFSet sets the SMS message format.
func (m *Modem) CMGFSet(n int) error {
	m.setIntParam("+CMGF", n)
	return m.err("AT+CMGF=")
}

// CSDHRead reads whether extended SMS display information is shown.
func (m *Modem) CSDHRead() (int, error) {
	n := m.readIntParam("+CSDH")
	return n, m.err("AT+CSDH?")
}

// CSDHSet sets whether extended SMS display information is shown.
func (m *Modem) CSDHSet(n int) error {
	m.setIntParam("+CSDH", n)
	return m.err("AT+CSDH=")
}

// CNMIRead reads the new-message-indication routing configuration.
func (m *Modem) CNMIRead() (mode, mt, bm, ds, bfr int, err error) {
	m.Cmd.Query([]byte("+CNMI"))
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+CNMI: "))
	mode, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	mt, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	bm, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	ds, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	bfr, _ = m.Rsp.Int()
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return mode, mt, bm, ds, bfr, m.err("AT+CNMI?")
}

// CNMISet sets the new-message-indication routing configuration.
func (m *Modem) CNMISet(mode, mt, bm, ds, bfr int) error {
	m.Cmd.Set([]byte("+CNMI"))
	m.Cmd.Int(mode)
	m.Cmd.Char(',')
	m.Cmd.Int(mt)
	m.Cmd.Char(',')
	m.Cmd.Int(bm)
	m.Cmd.Char(',')
	m.Cmd.Int(ds)
	m.Cmd.Char(',')
	m.Cmd.Int(bfr)
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("AT+CNMI=")
}

// CSCARead reads the SMS service centre address and its type-of-address.
func (m *Modem) CSCARead() (csa string, toCsa int, err error) {
	m.Cmd.Query([]byte("+CSCA"))
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+CSCA: "))
	_, s := m.Rsp.StrQ('"')
	m.Rsp.Char(',')
	toCsa, _ = m.Rsp.Int()
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return string(s), toCsa, m.err("AT+CSCA?")
}

// CSCASet sets the SMS service centre address.
func (m *Modem) CSCASet(csa string) error {
	m.Cmd.Set([]byte("+CSCA"))
	m.Cmd.StrQ([]byte(csa), '"')
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("AT+CSCA=")
}

//--- V24 control and V25ter ----------------------------------------------//

// ATESet enables (1) or disables (0) local command echo.
func (m *Modem) ATESet(on int) error {
	m.Cmd.At()
	m.Cmd.Char('E')
	m.Cmd.Int(on)
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("ATE")
}

//--- Packet switched data services ----------------------------------------//

// CGATTRead reads the packet-domain attach state.
func (m *Modem) CGATTRead() (int, error) {
	n := m.readIntParam("+CGATT")
	return n, m.err("AT+CGATT?")
}

// CGATTSet sets the packet-domain attach state.
func (m *Modem) CGATTSet(n int) error {
	m.setIntParam("+CGATT", n)
	return m.err("AT+CGATT=")
}

// CGREGRead reads the GPRS network registration status. lac and ci are
// zero when the modem omits them (the short response form).
func (m *Modem) CGREGRead() (n, stat, lac, ci int, err error) {
	m.Cmd.Query([]byte("+CGREG"))
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+CGREG: "))
	n, _ = m.Rsp.Int()
	m.Rsp.Char(',')
	stat, _ = m.Rsp.Int()
	if m.Rsp.MatchChar(',') == 1 {
		_, lacb := m.Rsp.StrQ('"')
		m.Rsp.Char(',')
		_, cib := m.Rsp.StrQ('"')
		lac = hexAtoi(lacb)
		ci = hexAtoi(cib)
	}
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return n, stat, lac, ci, m.err("AT+CGREG?")
}

// CGREGSet sets the GPRS network registration unsolicited-result mode.
func (m *Modem) CGREGSet(n int) error {
	m.setIntParam("+CGREG", n)
	return m.err("AT+CGREG=")
}

//--- helpers ---------------------------------------------------------------//

func atoi2(b []byte) int {
	v, _ := strconv.Atoi(string(b))
	return v
}

func hexAtoi(b []byte) int {
	v, _ := strconv.ParseInt(string(b), 16, 64)
	return int(v)
}

func trimPrefix(b []byte, prefix string) []byte {
	p := []byte(prefix)
	if len(b) >= len(p) {
		match := true
		for i := range p {
			if b[i] != p[i] {
				match = false
				break
			}
		}
		if match {
			return b[len(p):]
		}
	}
	return b
}
