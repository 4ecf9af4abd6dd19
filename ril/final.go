package ril

import (
	"bytes"
	"strconv"
)

var (
	cmeErrorPrefix = []byte("+CME ERROR: ")
	cmsErrorPrefix = []byte("+CMS ERROR: ")
)

// Final consumes and classifies the next line as a terminal AT response:
// OK, ERROR, ABORT, a +CME ERROR or a +CMS ERROR.
//
// On OK it returns the line length with no error. On ERROR, ABORT, +CME
// ERROR or +CMS ERROR it still returns the line length, but sets the
// State's sticky error to the matching Kind (KindRspFinalCME and
// KindRspFinalCMS also set CMErr to the reported numeric code) so the
// caller can distinguish the outcome while still accounting for every
// consumed byte. An unrecognised line is left unconsumed and reported as
// KindRspFinalUnknown with a count of 0.
func (r *Rsp) Final() int {
	n, ok := r.peekLine(KindReadTimeout)
	if !ok {
		return 0
	}
	content := make([]byte, n-2)
	for i := range content {
		content[i] = r.byteAt(i)
	}
	switch {
	case bytes.Equal(content, []byte("OK")):
		r.advance(n)
		return n
	case bytes.Equal(content, []byte("ERROR")):
		r.advance(n)
		r.err = KindRspFinalError
		return n
	case bytes.Equal(content, []byte("ABORT")):
		r.advance(n)
		r.err = KindRspFinalAbort
		return n
	case bytes.HasPrefix(content, cmeErrorPrefix):
		code, _ := strconv.Atoi(string(content[len(cmeErrorPrefix):]))
		r.advance(n)
		r.err = KindRspFinalCME
		r.cmErr = code
		return n
	case bytes.HasPrefix(content, cmsErrorPrefix):
		code, _ := strconv.Atoi(string(content[len(cmsErrorPrefix):]))
		r.advance(n)
		r.err = KindRspFinalCMS
		r.cmErr = code
		return n
	default:
		return r.fail(KindRspFinalUnknown)
	}
}
