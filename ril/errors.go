package ril

import "fmt"

// Kind identifies the sticky error state of a Cmd or Rsp engine.
//
// Once a State's Kind is non-zero every further primitive called on it
// is a no-op that returns zero and reports the same Kind, until the
// caller explicitly resets the State between AT transactions.
type Kind int

// The closed set of error kinds the core can report.
const (
	KindNone Kind = iota
	KindBadParameter
	KindCmdWrite
	KindReadOverflow
	KindReadTimeout
	KindReadGeneral
	KindRspChar
	KindRspCharP
	KindRspEcho
	KindRspEOL
	KindRspFinalAbort
	KindRspFinalCME
	KindRspFinalCMS
	KindRspFinalError
	KindRspFinalUnknown
	KindRspHex
	KindRspInt
	KindRspLine
	KindRspLineDump
	KindRspQuery
	KindRspStr
	KindRspStraNone
	KindRspStraOverflow
	KindRspStraUnderflow
	KindRspStrPN
	KindRspStrQQEBegin
	KindRspStrQQEEnd
	KindRspStrQQENoQuotes
	KindRspUint
)

var kindNames = [...]string{
	"NONE", "BAD_PARAMETER", "CMD_WRITE", "READ_OVERFLOW", "READ_TIMEOUT",
	"READ_GENERAL", "RSP_CHAR", "RSP_CHARP", "RSP_ECHO", "RSP_EOL",
	"RSP_FINAL_ABORT", "RSP_FINAL_CME", "RSP_FINAL_CMS", "RSP_FINAL_ERROR",
	"RSP_FINAL_UNKNOWN", "RSP_HEX", "RSP_INT", "RSP_LINE", "RSP_LINE_DUMP",
	"RSP_QUERY", "RSP_STR", "RSP_STRA_NONE", "RSP_STRA_OVERFLOW",
	"RSP_STRA_UNDERFLOW", "RSP_STRPN", "RSP_STRQQE_BEGIN", "RSP_STRQQE_END",
	"RSP_STRQQE_NO_QUOTES", "RSP_UINT",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error makes Kind satisfy the error interface, so a transaction's
// terminal Kind can be returned directly where a plain error suffices.
func (k Kind) Error() string {
	return k.String()
}

// CMEError indicates a +CME ERROR was returned by the modem.
// The value is the numeric or textual error code, as reported, depending
// on the modem's CMEE configuration.
type CMEError string

// CMSError indicates a +CMS ERROR was returned by the modem.
// The value is the numeric or textual error code, as reported.
type CMSError string

func (e CMEError) Error() string {
	return "CME Error: " + string(e)
}

func (e CMSError) Error() string {
	return "CMS Error: " + string(e)
}
