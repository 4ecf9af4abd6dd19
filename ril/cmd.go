package ril

import "strconv"

// Char emits a single byte.
func (c *Cmd) Char(b byte) int {
	return c.writeByte(b)
}

// CharN emits every byte of buf, in order.
func (c *Cmd) CharN(buf []byte) int {
	n := 0
	for _, b := range buf {
		n += c.writeByte(b)
	}
	return n
}

// EOL emits the AT line terminator, "\r\n".
func (c *Cmd) EOL() int {
	n := c.Char('\r')
	n += c.Char('\n')
	return n
}

// Int emits i as a decimal integer, with a leading '-' only if negative.
func (c *Cmd) Int(i int) int {
	if c.err != KindNone {
		return 0
	}
	return c.CharN(strconv.AppendInt(nil, int64(i), 10))
}

// Uint emits u as an unsigned decimal integer.
func (c *Cmd) Uint(u uint) int {
	if c.err != KindNone {
		return 0
	}
	return c.CharN(strconv.AppendUint(nil, uint64(u), 10))
}

// Hex emits x as lowercase hex, with no zero-padding.
func (c *Cmd) Hex(x uint) int {
	if c.err != KindNone {
		return 0
	}
	return c.CharN(strconv.AppendUint(nil, uint64(x), 16))
}

// HexW emits x as lowercase hex, zero-padded to exactly w digits.
//
// If x does not fit in w hex digits, the high digits are silently
// truncated; callers must choose w wide enough for the values they pass.
func (c *Cmd) HexW(x uint, w int) int {
	if c.err != KindNone {
		return 0
	}
	if w < 0 {
		return c.fail(KindBadParameter)
	}
	if bits := uint(4 * w); w > 0 && bits < 64 {
		x &= (1 << bits) - 1
	}
	b := strconv.AppendUint(nil, uint64(x), 16)
	for len(b) < w {
		b = append([]byte{'0'}, b...)
	}
	return c.CharN(b)
}

// nulIndex returns the offset of the first NUL byte in s, or len(s) if
// there is none.
func nulIndex(s []byte) int {
	for i, b := range s {
		if b == 0 {
			return i
		}
	}
	return len(s)
}

// Str emits s up to, but excluding, its first NUL byte.
func (c *Cmd) Str(s []byte) int {
	if c.err != KindNone {
		return 0
	}
	return c.CharN(s[:nulIndex(s)])
}

// StrN emits at most n bytes of s, stopping early at a NUL byte.
func (c *Cmd) StrN(s []byte, n int) int {
	if c.err != KindNone {
		return 0
	}
	m := nulIndex(s)
	if n < m {
		m = n
	}
	return c.CharN(s[:m])
}

// StrQ emits s surrounded by the quote byte q: q s q.
func (c *Cmd) StrQ(s []byte, q byte) int {
	n := c.Char(q)
	n += c.CharN(s)
	n += c.Char(q)
	return n
}

// StrQQ emits s surrounded by distinct opening and closing quotes.
func (c *Cmd) StrQQ(s []byte, qb, qe byte) int {
	n := c.Char(qb)
	n += c.CharN(s)
	n += c.Char(qe)
	return n
}

// StrQE emits s quoted by q, escaping any q or e byte within s with a
// preceding e.
func (c *Cmd) StrQE(s []byte, q, e byte) int {
	n := c.Char(q)
	for _, b := range s {
		if b == q || b == e {
			n += c.Char(e)
		}
		n += c.Char(b)
	}
	n += c.Char(q)
	return n
}

// StrQQE emits s quoted by distinct qb/qe, escaping any qb, qe or e byte
// within s with a preceding e.
func (c *Cmd) StrQQE(s []byte, qb, qe, e byte) int {
	n := c.Char(qb)
	for _, b := range s {
		if b == qb || b == qe || b == e {
			n += c.Char(e)
		}
		n += c.Char(b)
	}
	n += c.Char(qe)
	return n
}

// At emits the bare "AT" prefix.
func (c *Cmd) At() int {
	return c.CharN([]byte("AT"))
}

// AtC emits "AT" followed by cmd.
func (c *Cmd) AtC(cmd []byte) int {
	n := c.At()
	n += c.CharN(cmd)
	return n
}

// AtCO emits "AT" followed by cmd and a single operator byte (e.g. '?' or
// '=').
func (c *Cmd) AtCO(cmd []byte, op byte) int {
	n := c.AtC(cmd)
	n += c.Char(op)
	return n
}

// Query emits "AT<cmd>?\r\n".
func (c *Cmd) Query(cmd []byte) int {
	n := c.AtCO(cmd, '?')
	n += c.EOL()
	return n
}

// Set emits "AT<cmd>=", leaving the caller to append parameters and EOL.
func (c *Cmd) Set(cmd []byte) int {
	n := c.AtC(cmd)
	n += c.Char('=')
	return n
}
