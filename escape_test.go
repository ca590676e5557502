package vtline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeAccumRecognizes(t *testing.T) {
	cases := map[string]escapeAction{
		"\x5b\x41":     escUp,
		"\x5b\x42":     escDown,
		"\x5b\x43":     escRight,
		"\x5b\x44":     escLeft,
		"\x4f\x48":     escHome,
		"\x4f\x46":     escEnd,
		"\x5b\x33\x7e": escDelete,
	}

	for seq, want := range cases {
		var a escapeAccum
		a.begin()
		var action escapeAction
		var done bool
		for i := 0; i < len(seq); i++ {
			action, done = a.feed(seq[i])
		}
		require.True(t, done, "sequence %q never resolved", seq)
		require.Equal(t, want, action, "sequence %q", seq)
	}
}

func TestEscapeAccumUnknownDiscarded(t *testing.T) {
	var a escapeAccum
	a.begin()
	_, done := a.feed(0x5b)
	require.False(t, done, "must wait for a possible 3-byte match")
	_, done = a.feed(0x5a)
	require.False(t, done, "2 non-matching bytes must still wait for a possible 3-byte match")
	action, done := a.feed(0x00)
	require.True(t, done, "no 2- or 3-byte match is possible")
	require.Equal(t, escNone, action)
}

func TestEscapeAccumOverflowDiscarded(t *testing.T) {
	// Any three bytes already resolve by match or no-match, so feeding bytes
	// never fills the buffer; start from a full buffer to reach overflow.
	var a escapeAccum
	a.begin()
	a.len = maxEscape
	_, done := a.feed('Z')
	require.True(t, done, "overflow must resolve the accumulator")
}
