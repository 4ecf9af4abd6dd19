package ril

// Scanf parses fmt against the input stream, much like C's scanf but
// restricted to the small set of conversions AT responses need. Literal
// bytes in fmt must match exactly (as with Char). It returns the
// cumulative number of bytes consumed and the captured values, in the
// order their conversions appear in fmt.
//
// Conversions:
//
//	%%            literal '%'
//	%$            "\r\n", required
//	%c            one byte, matched against arg (byte); nothing captured
//	%/c           one byte, matched against a pattern arg ([]byte); nothing captured
//	%#c           n bytes (arg: int n), captured as []byte
//	%<n>c         n bytes (n literal in fmt), captured as []byte
//	%d, %u, %x    signed/unsigned/hex integer, captured as int/uint/uint
//	%*d, %*u, %*x as above, but discarded rather than captured
//	%s            a literal string, matched against arg ([]byte); nothing captured
//	%/s           a run of a pattern arg ([]byte), captured as []byte
//	%/#s          as %/s, bounded to n bytes (arg: int n)
//	%*/s, %*/#s   as above, but discarded rather than captured
//	%'s           quoted string, quote from arg (byte); captured as []byte
//	%"s           double-quoted string; captured as []byte
//	%'<m>s        quoted string, quote + escape from args (byte, byte); captured
//	%<m><m>s      quoted string, two distinct quote bytes from args; captured
//	%<m><m><m>s   as above, plus an escape byte from an arg; captured
//
// <m> marker bytes in the format string are placeholders: any byte other
// than '\'', '"' or 's' itself serves equally, the real quote/escape
// values always coming from args.
func (r *Rsp) Scanf(format []byte, args ...interface{}) (int, []interface{}) {
	a := rspArgs{args: args}
	var outs []interface{}
	n := 0
	i := 0
	for i < len(format) && r.err == KindNone {
		b := format[i]
		if b != '%' {
			n += r.Char(b)
			i++
			continue
		}
		i++
		if i >= len(format) {
			n += r.fail(KindBadParameter)
			break
		}
		switch format[i] {
		case '%':
			n += r.Char('%')
			i++
		case '$':
			n += r.EOL()
			i++
		case '\'':
			i++
			if i < len(format) && format[i] == 's' {
				i++
				q := a.byte(r)
				m, s := r.StrQ(q)
				n += m
				outs = append(outs, s)
				break
			}
			if i >= len(format) {
				n += r.fail(KindBadParameter)
				break
			}
			i++ // consume escape marker
			if i >= len(format) || format[i] != 's' {
				n += r.fail(KindBadParameter)
				break
			}
			i++
			q := a.byte(r)
			e := a.byte(r)
			m, s := r.StrQE(q, e)
			n += m
			outs = append(outs, s)
		case '"':
			i++
			if i >= len(format) || format[i] != 's' {
				n += r.fail(KindBadParameter)
				break
			}
			i++
			m, s := r.StrQ('"')
			n += m
			outs = append(outs, s)
		default:
			m, out, hasOut, consumed := parseRspConv(format[i:], &a, r)
			if consumed > 0 {
				n += m
				i += consumed
				if hasOut {
					outs = append(outs, out)
				}
				break
			}
			markers, consumed := readQuoteMarkers(format[i:])
			if consumed == 0 {
				n += r.fail(KindBadParameter)
				break
			}
			i += consumed
			// args are supplied in (qb, qe[, e]) order, the same order the
			// two quote markers appear in the format string -- the opposite
			// of Printf's (qe, qb[, e]) convention.
			switch len(markers) {
			case 2:
				qb, qe := a.byte(r), a.byte(r)
				m, s := r.StrQQ(qb, qe)
				n += m
				outs = append(outs, s)
			case 3:
				qb, qe, e := a.byte(r), a.byte(r), a.byte(r)
				m, s := r.StrQQE(qb, qe, e)
				n += m
				outs = append(outs, s)
			default:
				n += r.fail(KindBadParameter)
			}
		}
	}
	return n, outs
}

// parseRspConv parses a %['*']['/']['#'|width]{c,d,u,x,s} conversion
// starting immediately after the '%'. It returns the bytes consumed from
// the stream, any captured value, whether a value was captured, and the
// number of format bytes consumed (0 if this isn't such a conversion).
func parseRspConv(tail []byte, a *rspArgs, r *Rsp) (int, interface{}, bool, int) {
	j := 0
	discard := false
	if j < len(tail) && tail[j] == '*' {
		discard = true
		j++
	}
	pattern := false
	if j < len(tail) && tail[j] == '/' {
		pattern = true
		j++
	}
	hash := false
	width := 0
	haveWidth := false
	if j < len(tail) && tail[j] == '#' {
		hash = true
		j++
	} else {
		for j < len(tail) && tail[j] >= '0' && tail[j] <= '9' {
			haveWidth = true
			width = width*10 + int(tail[j]-'0')
			j++
		}
	}
	if j >= len(tail) {
		return 0, nil, false, 0
	}
	switch tail[j] {
	case 'c':
		j++
		switch {
		case pattern:
			cc := ParseCharClass(a.bytes(r))
			return r.CharP(cc), nil, false, j
		case hash:
			w := a.int(r)
			m, s := r.CharN(w)
			if discard {
				return m, nil, false, j
			}
			return m, s, true, j
		case haveWidth:
			m, s := r.CharN(width)
			if discard {
				return m, nil, false, j
			}
			return m, s, true, j
		default:
			return r.Char(a.byte(r)), nil, false, j
		}
	case 'd':
		j++
		m, v := r.Int()
		if discard {
			return m, nil, false, j
		}
		return m, v, true, j
	case 'u':
		j++
		m, v := r.Uint()
		if discard {
			return m, nil, false, j
		}
		return m, v, true, j
	case 'x':
		j++
		m, v := r.Hex()
		if discard {
			return m, nil, false, j
		}
		return m, v, true, j
	case 's':
		j++
		if pattern {
			cc := ParseCharClass(a.bytes(r))
			if hash {
				w := a.int(r)
				m, s := r.StrPN(cc, w)
				if discard {
					return m, nil, false, j
				}
				return m, s, true, j
			}
			m, s := r.StrP(cc)
			if discard {
				return m, nil, false, j
			}
			return m, s, true, j
		}
		return r.Str(a.bytes(r)), nil, false, j
	}
	return 0, nil, false, 0
}

// rspArgs is a cursor over Scanf's variadic arguments.
type rspArgs struct {
	args []interface{}
	i    int
}

func (a *rspArgs) next(r *Rsp) (interface{}, bool) {
	if a.i >= len(a.args) {
		r.fail(KindBadParameter)
		return nil, false
	}
	v := a.args[a.i]
	a.i++
	return v, true
}

func (a *rspArgs) byte(r *Rsp) byte {
	v, ok := a.next(r)
	if !ok {
		return 0
	}
	b, ok := v.(byte)
	if !ok {
		r.fail(KindBadParameter)
		return 0
	}
	return b
}

func (a *rspArgs) int(r *Rsp) int {
	v, ok := a.next(r)
	if !ok {
		return 0
	}
	i, ok := v.(int)
	if !ok {
		r.fail(KindBadParameter)
		return 0
	}
	return i
}

func (a *rspArgs) bytes(r *Rsp) []byte {
	v, ok := a.next(r)
	if !ok {
		return nil
	}
	b, ok := v.([]byte)
	if !ok {
		r.fail(KindBadParameter)
		return nil
	}
	return b
}
