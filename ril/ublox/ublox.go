package ublox

// U-blox SARA's +UDCONF=1 extension: switches AT+CMGS/AT+CMGR between
// ASCII and hex-encoded PDU bytes. Grounded on
// original_source/libril/tests/Ublox.py and testUblox.py.

// UDCONF1Read reads the current +UDCONF=1 hex-mode setting.
func (m *Modem) UDCONF1Read() (int, error) {
	m.Cmd.Set([]byte("+UDCONF"))
	m.Cmd.Int(1)
	m.Cmd.EOL()
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+UDCONF: "))
	m.Rsp.Int()
	m.Rsp.Char(',')
	hexMode, _ := m.Rsp.Int()
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return hexMode, m.err("AT+UDCONF=1")
}

// UDCONF1Set sets the +UDCONF=1 hex-mode setting.
func (m *Modem) UDCONF1Set(hexMode int) error {
	m.Cmd.Set([]byte("+UDCONF"))
	m.Cmd.Int(1)
	m.Cmd.Char(',')
	m.Cmd.Int(hexMode)
	m.Cmd.EOL()
	m.echoAndOK()
	return m.err("AT+UDCONF=1,")
}
