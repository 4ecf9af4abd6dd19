package ublox

import (
	"github.com/pkg/errors"
	"github.com/warthog618/ril"
	"github.com/warthog618/sms/encoding/pdumode"
)

// PDU-mode SMS send/receive, grounded on the teacher's gsm.go
// (SendSMSPDU, pdumode.PDU) but adapted to U-blox's +UDCONF=1 hex-mode
// convention: with hex mode on, AT+CMGS/+CMGR carry the SMSC+TPDU octets
// as plain ASCII-hex pairs rather than the 3GPP PDU-mode length-prefixed
// form. SendPDU writes each octet with Cmd.HexW, and RecvPDU decodes the
// dumped hex line itself. pdumode.PDU, through its MarshalHexString and
// UnmarshalHexString, is still used to join/split the SMSC and TPDU
// portions, the part of the teacher's dependency this module keeps.

// EncodePDU combines an SMSC address and a TPDU into the byte sequence a
// hex-mode AT+CMGS expects.
func EncodePDU(sca pdumode.SMSCAddress, tpdu []byte) ([]byte, error) {
	pdu := pdumode.PDU{SMSC: sca, TPDU: tpdu}
	s, err := pdu.MarshalHexString()
	if err != nil {
		return nil, err
	}
	raw, err := hexDecodeASCII(s)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodePDU splits a hex-mode AT+CMGR payload back into its SMSC address
// and TPDU.
func DecodePDU(raw []byte) (pdumode.SMSCAddress, []byte, error) {
	s := hexEncodeASCII(raw)
	pdu, err := pdumode.UnmarshalHexString(s)
	if err != nil {
		return pdumode.SMSCAddress{}, nil, err
	}
	return pdu.SMSC, pdu.TPDU, nil
}

// SendPDU sends a PDU-mode SMS over hex-mode AT+CMGS, returning the
// message reference on success. The modem must already be in PDU mode
// (CMGFSet(0)) with hex mode enabled (UDCONF1Set(1)).
func (m *Modem) SendPDU(sca pdumode.SMSCAddress, tpdu []byte) (int, error) {
	raw, err := EncodePDU(sca, tpdu)
	if err != nil {
		return 0, err
	}
	m.Cmd.Set([]byte("+CMGS"))
	m.Cmd.Int(len(raw))
	m.Cmd.EOL()
	m.Rsp.Echo()
	m.Rsp.Char('>') // the modem's PDU-entry prompt
	m.Rsp.Char(' ')
	for _, b := range raw {
		m.Cmd.HexW(uint(b), 2)
	}
	m.Cmd.Char(0x1a) // Ctrl-Z submits the PDU
	m.Rsp.Str([]byte("+CMGS: "))
	mr, _ := m.Rsp.Int()
	m.Rsp.EOL()
	m.Rsp.ResOK()
	return mr, m.err("AT+CMGS=")
}

// RecvPDU reads SMS index idx from memory in hex-mode PDU form via
// AT+CMGR, returning its SMSC address and TPDU.
func (m *Modem) RecvPDU(idx int) (pdumode.SMSCAddress, []byte, error) {
	m.Cmd.Set([]byte("+CMGR"))
	m.Cmd.Int(idx)
	m.Cmd.EOL()
	m.Rsp.Echo()
	m.Rsp.Str([]byte("+CMGR: "))
	m.Rsp.Int() // status, unused here
	m.Rsp.Char(',')
	m.Rsp.Char(',')
	m.Rsp.Int() // length, unused: re-derived from the hex run below
	m.Rsp.EOL()
	_, hexLine := m.Rsp.ResOKStr()
	if err := m.err("AT+CMGR="); err != nil {
		return pdumode.SMSCAddress{}, nil, err
	}
	raw, err := hexDecodeASCII(string(hexLine))
	if err != nil {
		return pdumode.SMSCAddress{}, nil, errors.Wrap(err, "ril/ublox: AT+CMGR=")
	}
	return DecodePDU(raw)
}

func hexDecodeASCII(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ril.KindBadParameter
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		if hi < 0 || lo < 0 {
			return nil, ril.KindBadParameter
		}
		out[i] = byte(hi<<4 | lo)
	}
	return out, nil
}

func hexEncodeASCII(b []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[2*i] = digits[c>>4]
		out[2*i+1] = digits[c&0xf]
	}
	return string(out)
}

func hexNibble(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
