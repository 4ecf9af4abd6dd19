package ril

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCmd() (*Cmd, *[]byte) {
	var out []byte
	c := NewCmd(func(b byte) error {
		out = append(out, b)
		return nil
	})
	return c, &out
}

func TestCmdChar(t *testing.T) {
	c, out := newTestCmd()
	n := c.Char('c')
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte("c"), *out)
	assert.Equal(t, KindNone, c.Err())
}

func TestCmdEOL(t *testing.T) {
	c, out := newTestCmd()
	n := c.EOL()
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("\r\n"), *out)
}

func TestCmdInt(t *testing.T) {
	patterns := []struct {
		name string
		i    int
		want string
	}{
		{"pos", 24680, "24680"},
		{"neg", -24680, "-24680"},
	}
	for _, p := range patterns {
		t.Run(p.name, func(t *testing.T) {
			c, out := newTestCmd()
			n := c.Int(p.i)
			assert.Equal(t, len(p.want), n)
			assert.Equal(t, []byte(p.want), *out)
		})
	}
}

func TestCmdUint(t *testing.T) {
	c, out := newTestCmd()
	n := c.Uint(0xdeadbeef)
	assert.Equal(t, len("3735928559"), n)
	assert.Equal(t, []byte("3735928559"), *out)
}

func TestCmdHex(t *testing.T) {
	c, out := newTestCmd()
	n := c.Hex(0xdeadbeef)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("deadbeef"), *out)
}

func TestCmdHexW(t *testing.T) {
	c, out := newTestCmd()
	n := c.HexW(0xbeef, 8)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("0000beef"), *out)
}

func TestCmdHexWMask(t *testing.T) {
	c, out := newTestCmd()
	n := c.HexW(0x1beef, 4)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("beef"), *out)
}

func TestCmdStr(t *testing.T) {
	c, out := newTestCmd()
	n := c.Str([]byte("abc\x00def"))
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), *out)
}

func TestCmdStrN(t *testing.T) {
	c, out := newTestCmd()
	n := c.StrN([]byte("abcdef"), 3)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), *out)
}

func TestCmdStrQ(t *testing.T) {
	c, out := newTestCmd()
	n := c.StrQ([]byte("string"), '"')
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte(`"string"`), *out)
}

func TestCmdStrQQ(t *testing.T) {
	c, out := newTestCmd()
	n := c.StrQQ([]byte("str/ing"), '<', '>')
	assert.Equal(t, 9, n)
	assert.Equal(t, []byte("<str/ing>"), *out)
}

func TestCmdStrQE(t *testing.T) {
	c, out := newTestCmd()
	n := c.StrQE([]byte(`string\"`), '"', '\\')
	assert.Equal(t, 12, n)
	assert.Equal(t, []byte(`"string\\\""`), *out)
}

func TestCmdAtQuery(t *testing.T) {
	c, out := newTestCmd()
	n := c.Query([]byte("+CSQ"))
	assert.Equal(t, len("AT+CSQ?\r\n"), n)
	assert.Equal(t, []byte("AT+CSQ?\r\n"), *out)
}

func TestCmdSet(t *testing.T) {
	c, out := newTestCmd()
	n := c.Set([]byte("+CSCS"))
	n += c.StrQ([]byte("IRA"), '"')
	n += c.EOL()
	assert.Equal(t, len(`AT+CSCS="IRA"` + "\r\n"), n)
	assert.Equal(t, []byte(`AT+CSCS="IRA"`+"\r\n"), *out)
}

func TestCmdPrintfLiteral(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("AT%%%$"))
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("AT%\r\n"), *out)
}

func TestCmdPrintfChar(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%c"), byte('x'))
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte("x"), *out)
}

func TestCmdPrintfCharN(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%*c"), 3, []byte("byten"))
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("byt"), *out)
}

func TestCmdPrintfIntWidth(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%08d"), -24680)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("-0024680"), *out)
}

func TestCmdPrintfIntForceSignWidth(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%+8d"), 24680)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte("+0024680"), *out)
}

func TestCmdPrintfHexWidth(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%4x"), uint(0xbeef))
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("beef"), *out)
}

func TestCmdPrintfStr(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%s"), []byte("IRA\x00"))
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("IRA"), *out)
}

func TestCmdPrintfStrN(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte("%*s"), 3, []byte("IRAtail"))
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("IRA"), *out)
}

func TestCmdPrintfDQuote(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte(`%"s`), []byte("str"))
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte(`"str"`), *out)
}

func TestCmdPrintfQuoteArg(t *testing.T) {
	c, out := newTestCmd()
	n := c.Printf([]byte(`%'s`), byte('\''), []byte("str"))
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte(`'str'`), *out)
}

func TestCmdPrintfQuoteQuoteArg(t *testing.T) {
	c, out := newTestCmd()
	// args are (qe, qb, s): the markers appear in the format string in the
	// same order the corresponding quote bytes are supplied as arguments.
	n := c.Printf([]byte("%><s"), byte('>'), byte('<'), []byte("str"))
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("<str>"), *out)
}

func TestCmdStickyError(t *testing.T) {
	calls := 0
	c := NewCmd(func(b byte) error {
		calls++
		return assert.AnError
	})
	n := c.Char('a')
	assert.Equal(t, 0, n)
	assert.Equal(t, KindCmdWrite, c.Err())
	n = c.Char('b')
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, calls, "no further writes once sticky")
}
