package ublox

import (
	"github.com/pkg/errors"
	"github.com/warthog618/ril"
)

// CMTI is a decoded +CMTI unsolicited result code, reporting that a new
// SMS has arrived in a particular memory store slot.
type CMTI struct {
	Mem   string
	Index int
}

// The SMS memory-storage enumeration a +CMTI URC's <mem> names.
const (
	MemSM = iota
	MemME
	MemMT
	MemSR
	MemBM
)

var memNames = []string{"SM", "ME", "MT", "SR", "BM"}

var memStra = func() []ril.StraEntry {
	entries := make([]ril.StraEntry, len(memNames))
	for i, n := range memNames {
		entries[i] = ril.StraEntry{Index: i, Text: []byte(n)}
	}
	return entries
}()

var memClass = ril.ParseCharClass([]byte("A-Z"))

// ParseCMTI parses a +CMTI: "<mem>",<index> URC line from rsp. It is a
// pure parser over whatever line framing the caller has already
// positioned rsp at (typically immediately after Rsp.Echo, or as the
// hook a URC dispatcher invokes on a recognised prefix) — it does not
// itself schedule or wait for the URC, per spec.md's "core provides the
// hook points, not the scheduler" design.
func ParseCMTI(rsp *ril.Rsp) (CMTI, error) {
	var c CMTI
	rsp.Str([]byte(`+CMTI: "`))
	idx := rsp.Stra(memClass, memStra)
	rsp.Char('"')
	rsp.Char(',')
	index, _ := rsp.Int()
	rsp.EOL()
	if rsp.Err() != ril.KindNone {
		k := rsp.Err()
		rsp.Reset()
		return CMTI{}, errors.Wrap(k, "ril/ublox: +CMTI")
	}
	c.Mem = memNames[idx]
	c.Index = index
	return c, nil
}
