package ublox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/ril"
	"github.com/warthog618/ril/ublox"
)

func newTestModem(response []byte) (*ublox.Modem, *[]byte) {
	var out []byte
	write := func(b byte) error {
		out = append(out, b)
		return nil
	}
	i := 0
	read := func(timeoutMs int) (int, error) {
		if i >= len(response) {
			return 0, ril.ErrReadTimeout
		}
		b := response[i]
		i++
		return int(b), nil
	}
	return ublox.New(write, read, 256), &out
}

// rspOK builds the echo + info-line(s) + OK framing the original Python
// test fixture's rsp_ok helper produces.
func rspOK(lines ...string) []byte {
	b := []byte("\r\n")
	for _, l := range lines {
		b = append(b, l...)
		b = append(b, '\r', '\n')
	}
	b = append(b, "OK\r\n"...)
	return b
}

func TestCGMRRead(t *testing.T) {
	m, out := newTestModem(rspOK("11.40"))
	v, err := m.CGMRRead()
	require.Nil(t, err)
	assert.Equal(t, "11.40", v)
	assert.Equal(t, []byte("AT+CGMR\r\n"), *out)
}

func TestCCIDRead(t *testing.T) {
	m, out := newTestModem(rspOK("+CCID: 8939107800023416395"))
	v, err := m.CCIDRead()
	require.Nil(t, err)
	assert.Equal(t, "8939107800023416395", v)
	assert.Equal(t, []byte("AT+CCID\r\n"), *out)
}

func TestCSCSRead(t *testing.T) {
	m, out := newTestModem(rspOK(`+CSCS: "IRA"`))
	cs, err := m.CSCSRead()
	require.Nil(t, err)
	assert.Equal(t, ublox.CharsetIRA, cs)
	assert.Equal(t, []byte("AT+CSCS?\r\n"), *out)
}

func TestCSCSSet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CSCSSet(ublox.CharsetIRA)
	require.Nil(t, err)
	assert.Equal(t, []byte(`AT+CSCS="IRA"`+"\r\n"), *out)
}

func TestCMERRead(t *testing.T) {
	m, out := newTestModem(rspOK("+CMER: 1,0,0,0,1"))
	mode, ind, bfr, err := m.CMERRead()
	require.Nil(t, err)
	assert.Equal(t, 1, mode)
	assert.Equal(t, 0, ind)
	assert.Equal(t, 1, bfr)
	assert.Equal(t, []byte("AT+CMER?\r\n"), *out)
}

func TestCMERSet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CMERSet(1, 2, 1)
	require.Nil(t, err)
	assert.Equal(t, []byte("AT+CMER=1,0,0,2,1\r\n"), *out)
}

func TestCCLKRead(t *testing.T) {
	m, out := newTestModem(rspOK(`+CCLK: "14/07/01,15:00:00+01"`))
	c, err := m.CCLKRead()
	require.Nil(t, err)
	assert.Equal(t, 2014, c.Year)
	assert.Equal(t, 7, c.Month)
	assert.Equal(t, 1, c.Day)
	assert.Equal(t, 15, c.Hours)
	assert.Equal(t, 0, c.Minutes)
	assert.Equal(t, 0, c.Second)
	assert.Equal(t, 15, c.Timezone)
	assert.Equal(t, []byte("AT+CCLK?\r\n"), *out)
}

func TestCCLKSet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CCLKSet(ublox.Clock{
		Year: 2014, Month: 7, Day: 1,
		Hours: 15, Minutes: 0, Second: 0,
		Timezone: 15,
	})
	require.Nil(t, err)
	assert.Equal(t, []byte(`AT+CCLK="14/07/01,15:00:00+01"`+"\r\n"), *out)
}

func TestCMEERead(t *testing.T) {
	m, out := newTestModem(rspOK("+CMEE: 2"))
	n, err := m.CMEERead()
	require.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("AT+CMEE?\r\n"), *out)
}

func TestCMEESet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CMEESet(2)
	require.Nil(t, err)
	assert.Equal(t, []byte("AT+CMEE=2\r\n"), *out)
}

func TestCGEDRead(t *testing.T) {
	m, out := newTestModem(rspOK("+CGED: 3"))
	n, err := m.CGEDRead()
	require.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("AT+CGED?\r\n"), *out)
}

func TestCMGFSet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CMGFSet(1)
	require.Nil(t, err)
	assert.Equal(t, []byte("AT+CMGF=1\r\n"), *out)
}

func TestCNMIRead(t *testing.T) {
	m, out := newTestModem(rspOK("+CNMI: 0,0,0,0,0"))
	mode, mt, bm, ds, bfr, err := m.CNMIRead()
	require.Nil(t, err)
	assert.Equal(t, 0, mode)
	assert.Equal(t, 0, mt)
	assert.Equal(t, 0, bm)
	assert.Equal(t, 0, ds)
	assert.Equal(t, 0, bfr)
	assert.Equal(t, []byte("AT+CNMI?\r\n"), *out)
}

func TestCNMISet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CNMISet(1, 1, 0, 0, 0)
	require.Nil(t, err)
	assert.Equal(t, []byte("AT+CNMI=1,1,0,0,0\r\n"), *out)
}

func TestCSCARead(t *testing.T) {
	m, out := newTestModem(rspOK(`+CSCA: "",129`))
	csa, toCsa, err := m.CSCARead()
	require.Nil(t, err)
	assert.Equal(t, "", csa)
	assert.Equal(t, 129, toCsa)
	assert.Equal(t, []byte("AT+CSCA?\r\n"), *out)
}

func TestCSCASet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CSCASet("0170111000")
	require.Nil(t, err)
	assert.Equal(t, []byte(`AT+CSCA="0170111000"`+"\r\n"), *out)
}

func TestATESet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.ATESet(1)
	require.Nil(t, err)
	assert.Equal(t, []byte("ATE1\r\n"), *out)
}

func TestCGATTRead(t *testing.T) {
	m, out := newTestModem(rspOK("+CGATT: 1"))
	n, err := m.CGATTRead()
	require.Nil(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte("AT+CGATT?\r\n"), *out)
}

func TestCGREGReadShort(t *testing.T) {
	m, out := newTestModem(rspOK("+CGREG: 0,4"))
	n, stat, lac, ci, err := m.CGREGRead()
	require.Nil(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 4, stat)
	assert.Equal(t, 0, lac)
	assert.Equal(t, 0, ci)
	assert.Equal(t, []byte("AT+CGREG?\r\n"), *out)
}

func TestCGREGReadLong(t *testing.T) {
	m, out := newTestModem(rspOK(`+CGREG: 2,1,"61EF","7D58A3"`))
	n, stat, lac, ci, err := m.CGREGRead()
	require.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, stat)
	assert.Equal(t, 0x61EF, lac)
	assert.Equal(t, 0x7D58A3, ci)
	assert.Equal(t, []byte("AT+CGREG?\r\n"), *out)
}

func TestCGREGSet(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.CGREGSet(1)
	require.Nil(t, err)
	assert.Equal(t, []byte("AT+CGREG=1\r\n"), *out)
}

func TestUDCONF1Read(t *testing.T) {
	m, out := newTestModem(rspOK("+UDCONF: 1,1"))
	hexMode, err := m.UDCONF1Read()
	require.Nil(t, err)
	assert.Equal(t, 1, hexMode)
	assert.Equal(t, []byte("AT+UDCONF=1\r\n"), *out)
}

func TestUDCONF1Set(t *testing.T) {
	m, out := newTestModem(rspOK())
	err := m.UDCONF1Set(0)
	require.Nil(t, err)
	assert.Equal(t, []byte("AT+UDCONF=1,0\r\n"), *out)
}

// TestCMEEReadErrorResponse checks that an unexpected +CME ERROR line in
// place of the info response leaves CMEERead with a non-nil error rather
// than silently returning a zero value.
func TestCMEEReadErrorResponse(t *testing.T) {
	m, _ := newTestModem([]byte("\r\n+CME ERROR: 10\r\n"))
	_, err := m.CMEERead()
	require.NotNil(t, err)
}

