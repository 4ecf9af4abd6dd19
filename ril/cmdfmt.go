package ril

import "strconv"

// Printf formats args according to fmt and emits the resulting bytes,
// much like C's printf but restricted to the small set of conversions AT
// commands need. Literal bytes in fmt pass through unchanged.
//
// Conversions:
//
//	%%            literal '%'
//	%$            "\r\n"
//	%c            one byte (arg: byte)
//	%*c / %<n>c   exactly n bytes from a buffer (arg: int n, []byte buf)
//	%d            signed int (arg: int)
//	%+d           signed int, force sign
//	%0<w>d        zero-padded width
//	%u            unsigned int (arg: uint)
//	%x, %<w>x     hex, optional zero-padded width (arg: uint)
//	%s            NUL-terminated string (arg: []byte)
//	%*s           up to n bytes of a string (arg: int n, []byte buf)
//	%"s           double-quoted string (arg: []byte)
//	%'s           string with caller-supplied quote (arg: byte q, []byte s)
//	%<m><m>s      strqq with two caller-supplied quote bytes (any two
//	              non-special bytes as markers; args: byte q1, byte q2, []byte s)
//	%'<m>s        strqe with caller-supplied quote + escape bytes (args:
//	              byte q, byte e, []byte s)
//	%<m><m><m>s   strqqe (args: byte q1, byte q2, byte e, []byte s)
//
// Returns the cumulative number of bytes emitted.
func (c *Cmd) Printf(format []byte, args ...interface{}) int {
	a := cmdArgs{args: args}
	n := 0
	i := 0
	for i < len(format) && c.err == KindNone {
		b := format[i]
		if b != '%' {
			n += c.Char(b)
			i++
			continue
		}
		i++
		if i >= len(format) {
			n += c.fail(KindBadParameter)
			break
		}
		switch format[i] {
		case '%':
			n += c.Char('%')
			i++
		case '$':
			n += c.EOL()
			i++
		case '"':
			i++
			if i >= len(format) || format[i] != 's' {
				n += c.fail(KindBadParameter)
				break
			}
			i++
			n += c.StrQ(a.bytes(c), '"')
		case '\'':
			i++
			if i < len(format) && format[i] == 's' {
				i++
				q := a.byte(c)
				n += c.StrQ(a.bytes(c), q)
				break
			}
			if i >= len(format) {
				n += c.fail(KindBadParameter)
				break
			}
			i++ // consume escape marker byte
			if i >= len(format) || format[i] != 's' {
				n += c.fail(KindBadParameter)
				break
			}
			i++
			q := a.byte(c)
			e := a.byte(c)
			n += c.StrQE(a.bytes(c), q, e)
		default:
			m, consumed := parseNumericConv(format[i:], &a, c)
			if consumed > 0 {
				n += m
				i += consumed
				break
			}
			markers, consumed := readQuoteMarkers(format[i:])
			if consumed == 0 {
				n += c.fail(KindBadParameter)
				break
			}
			i += consumed
			// args are supplied in (qe, qb[, e]) order, the same order the
			// two quote markers appear in the format string.
			switch len(markers) {
			case 2:
				qe, qb := a.byte(c), a.byte(c)
				n += c.StrQQ(a.bytes(c), qb, qe)
			case 3:
				qe, qb, e := a.byte(c), a.byte(c), a.byte(c)
				n += c.StrQQE(a.bytes(c), qb, qe, e)
			default:
				n += c.fail(KindBadParameter)
			}
		}
	}
	return n
}

// parseNumericConv parses a %[+]['*'|width]{c,d,u,x,s} conversion starting
// immediately after the '%'. It returns the bytes emitted and the number
// of format bytes consumed (0 if this isn't a numeric/plain conversion).
func parseNumericConv(tail []byte, a *cmdArgs, c *Cmd) (int, int) {
	j := 0
	plus := false
	if j < len(tail) && tail[j] == '+' {
		plus = true
		j++
	}
	star := false
	width := 0
	haveWidth := false
	if j < len(tail) && tail[j] == '*' {
		star = true
		j++
	} else {
		for j < len(tail) && tail[j] >= '0' && tail[j] <= '9' {
			haveWidth = true
			width = width*10 + int(tail[j]-'0')
			j++
		}
	}
	if j >= len(tail) {
		return 0, 0
	}
	switch tail[j] {
	case 'c':
		j++
		if star {
			w := a.int(c)
			buf := a.bytes(c)
			return c.CharN(truncate(buf, w)), j
		}
		if haveWidth {
			buf := a.bytes(c)
			return c.CharN(truncate(buf, width)), j
		}
		return c.Char(a.byte(c)), j
	case 'd':
		j++
		return c.intFmt(a.int(c), width, plus), j
	case 'u':
		j++
		return c.Uint(a.uint(c)), j
	case 'x':
		j++
		if haveWidth {
			return c.HexW(a.uint(c), width), j
		}
		return c.Hex(a.uint(c)), j
	case 's':
		j++
		if star {
			w := a.int(c)
			return c.StrN(a.bytes(c), w), j
		}
		return c.Str(a.bytes(c)), j
	}
	return 0, 0
}

// readQuoteMarkers scans tail for a run of 2 or 3 arbitrary marker bytes
// terminated by 's', as used by the %<q1><q2>s and %<q1><q2><e>s forms.
func readQuoteMarkers(tail []byte) ([]byte, int) {
	j := 0
	for j < len(tail) && tail[j] != 's' {
		j++
	}
	if j >= len(tail) || j < 2 || j > 3 {
		return nil, 0
	}
	return tail[:j], j + 1
}

func truncate(buf []byte, n int) []byte {
	if n < len(buf) {
		return buf[:n]
	}
	return buf
}

// intFmt emits i as a signed decimal integer, zero-padded (including the
// sign, if any) to width characters.
func (c *Cmd) intFmt(i int, width int, forceSign bool) int {
	if c.err != KindNone {
		return 0
	}
	neg := i < 0
	abs := i
	if neg {
		abs = -i
	}
	digits := strconv.AppendInt(nil, int64(abs), 10)
	signLen := 0
	if neg || forceSign {
		signLen = 1
	}
	for len(digits)+signLen < width {
		digits = append([]byte{'0'}, digits...)
	}
	b := make([]byte, 0, len(digits)+signLen)
	switch {
	case neg:
		b = append(b, '-')
	case forceSign:
		b = append(b, '+')
	}
	b = append(b, digits...)
	return c.CharN(b)
}

// cmdArgs is a cursor over Printf's variadic arguments.
type cmdArgs struct {
	args []interface{}
	i    int
}

func (a *cmdArgs) next(c *Cmd) (interface{}, bool) {
	if a.i >= len(a.args) {
		c.fail(KindBadParameter)
		return nil, false
	}
	v := a.args[a.i]
	a.i++
	return v, true
}

func (a *cmdArgs) byte(c *Cmd) byte {
	v, ok := a.next(c)
	if !ok {
		return 0
	}
	b, ok := v.(byte)
	if !ok {
		c.fail(KindBadParameter)
		return 0
	}
	return b
}

func (a *cmdArgs) int(c *Cmd) int {
	v, ok := a.next(c)
	if !ok {
		return 0
	}
	i, ok := v.(int)
	if !ok {
		c.fail(KindBadParameter)
		return 0
	}
	return i
}

func (a *cmdArgs) uint(c *Cmd) uint {
	v, ok := a.next(c)
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case uint:
		return x
	case int:
		return uint(x)
	}
	c.fail(KindBadParameter)
	return 0
}

func (a *cmdArgs) bytes(c *Cmd) []byte {
	v, ok := a.next(c)
	if !ok {
		return nil
	}
	b, ok := v.([]byte)
	if !ok {
		c.fail(KindBadParameter)
		return nil
	}
	return b
}
