package vtline

// maxEscape bounds the in-progress escape sequence buffer (escape_buf, §3).
const maxEscape = 8

// escapeAction names the editor action an accumulated escape sequence
// resolves to once fully recognized (§4.3).
type escapeAction int

const (
	escNone escapeAction = iota
	escUp
	escDown
	escRight
	escLeft
	escHome
	escEnd
	escDelete
)

// escapeTable holds every sequence this engine recognizes, keyed by its raw
// bytes after ESC (the accumulator never stores the leading ESC itself, so
// the spec's length-3/length-4 sequences are matched here at length 2/3).
var escapeTable = map[string]escapeAction{
	"\x5b\x41":    escUp,
	"\x5b\x42":    escDown,
	"\x5b\x43":    escRight,
	"\x5b\x44":    escLeft,
	"\x4f\x48":    escHome,
	"\x4f\x46":    escEnd,
	"\x5b\x33\x7e": escDelete,
}

// escapeAccum accumulates bytes following ESC until a known sequence
// matches, overflows, or is abandoned by a non-matching prefix. started
// distinguishes "ESC just seen, no sequence bytes yet" from "not in an
// escape sequence at all" — both have len == 0.
type escapeAccum struct {
	buf     [maxEscape]byte
	len     int
	started bool
}

func (a *escapeAccum) begin() {
	a.started = true
	a.len = 0
}

func (a *escapeAccum) reset() {
	a.started = false
	a.len = 0
}

func (a *escapeAccum) active() bool {
	return a.started
}

// feed appends b and reports whether the sequence resolved. done is true once
// either a known action is recognized (action != escNone) or the sequence is
// abandoned (action == escNone, overflow or no match possible) — either way
// the caller must reset the accumulator.
func (a *escapeAccum) feed(b byte) (action escapeAction, done bool) {
	if a.len >= maxEscape {
		a.reset()
		return escNone, true
	}
	a.buf[a.len] = b
	a.len++

	if a.len >= 2 {
		if act, ok := escapeTable[string(a.buf[:2])]; ok {
			return act, true
		}
	}
	if a.len >= 3 {
		if act, ok := escapeTable[string(a.buf[:3])]; ok {
			return act, true
		}
		// No 2-byte or 3-byte match possible: discard (§4.3).
		return escNone, true
	}
	return escNone, false
}
