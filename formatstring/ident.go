package formatstring

import "github.com/smasher164/xid"

// Zero-width joiner/non-joiner are valid XID_Continue code points in the
// Unicode tables but are explicitly rejected here: they are invisible in a
// rendered log line and have caused identifier-spoofing issues in other
// tools that accept them (spec §4.1 edge case).
const (
	zeroWidthNonJoiner = '‌'
	zeroWidthJoiner    = '‍'
)

func isXIDStart(r rune) bool {
	return xid.Start(r)
}

func isXIDContinue(r rune) bool {
	return xid.Continue(r)
}
