package vtline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	tokShow = iota + 1
	tokShutdown
	tokSet
	tokName
)

var testDict = TokenDict{
	tokShow:     "show",
	tokShutdown: "shutdown",
	tokSet:      "set",
	tokName:     "name",
}

func feedString(e *Engine, s string) {
	for i := 0; i < len(s); i++ {
		e.Feed(s[i])
	}
}

func newTestEngine(root TokenList, dict TokenDict) (*Engine, *strings.Builder) {
	var out strings.Builder
	print := func(ctx interface{}, p []byte) { out.Write(p) }
	e := New(root, dict, print, nil)
	e.SetPrompt("> ")
	out.Reset()
	return e, &out
}

func TestSimpleCommandScenario(t *testing.T) {
	root := TokenList{
		{ID: tokShow, Help: "print version"},
	}
	e, out := newTestEngine(root, testDict)

	var got ParsedLine
	e.SetCallback(func(p ParsedLine) { got = p })

	feedString(e, "show\r")
	require.Equal(t, []int{tokShow, 0}, got.Tokens)
	require.NotContains(t, out.String(), "Invalid")
}

func TestPrefixCompletionScenario(t *testing.T) {
	root := TokenList{
		{ID: tokShow, Help: "print version"},
		{ID: tokShutdown, Help: "power off"},
	}
	e, out := newTestEngine(root, testDict)

	feedString(e, "s")
	e.Feed(0x09)
	require.Contains(t, out.String(), "show")
	require.Contains(t, out.String(), "shutdown")
	require.Contains(t, out.String(), "> s")

	e2, _ := newTestEngine(root, testDict)
	feedString(e2, "sho")
	e2.Feed(0x09)
	require.Equal(t, "show ", string(e2.line.text()))
}

func TestTypedArgumentScenario(t *testing.T) {
	root := TokenList{
		{ID: tokSet, ArgType: ArgInteger},
	}
	e, _ := newTestEngine(root, testDict)

	var got ParsedLine
	e.SetCallback(func(p ParsedLine) { got = p })

	feedString(e, "set 0x2A\r")
	require.Equal(t, []int{tokSet, TagInteger, 0, 0}, got.Tokens)
	require.Equal(t, int64(42), DecodeInt(got.ArgStorage, got.Tokens[2]))
}

func TestQuotedStringArgumentScenario(t *testing.T) {
	root := TokenList{
		{ID: tokName, ArgType: ArgString},
	}
	e, _ := newTestEngine(root, testDict)

	var got ParsedLine
	e.SetCallback(func(p ParsedLine) { got = p })

	feedString(e, `name "hi there"`+"\r")
	require.Equal(t, []int{tokName, TagString, 0, 0}, got.Tokens)
	require.Equal(t, "hi there", string(DecodeString(got.ArgStorage, got.Tokens[2])))
}

func TestUnmatchedQuoteRecoveryScenario(t *testing.T) {
	root := TokenList{
		{ID: tokShow, Help: "print version"},
	}
	e, out := newTestEngine(root, testDict)

	called := false
	e.SetCallback(func(p ParsedLine) { called = true })

	feedString(e, `foo "bar`+"\r")
	require.Contains(t, out.String(), "Unmatched quote.")
	require.False(t, called)

	out.Reset()
	var got ParsedLine
	e.SetCallback(func(p ParsedLine) { got = p })
	feedString(e, "show\r")
	require.Equal(t, []int{tokShow, 0}, got.Tokens)
}

// TestTerminalMatchesLineBuffer exercises §8 property 6: after any
// editor action, the terminal model equals prompt || line_buf with the
// cursor positioned at `cursor` bytes past the prompt.
func TestTerminalMatchesLineBuffer(t *testing.T) {
	root := TokenList{{ID: tokShow}}
	prompt := "> "
	term := &mockTerm{}
	print := func(ctx interface{}, p []byte) { term.Write(p) }
	e := New(root, testDict, print, nil)
	e.SetPrompt(prompt)

	// A terminal grid doesn't shrink: erasing a glyph leaves a blank cell
	// rather than removing it, so the comparison only requires the
	// meaningful prefix to match and any leftover cell to be blank.
	check := func(step string) {
		want := prompt + string(e.line.text())
		got := string(term.contents)
		require.GreaterOrEqual(t, len(got), len(want), "after %s", step)
		require.Equal(t, want, got[:len(want)], "after %s", step)
		if len(got) > len(want) {
			require.Equal(t, strings.Repeat(" ", len(got)-len(want)), got[len(want):], "stale cells must be blanked after %s", step)
		}
		require.Equal(t, len(prompt)+e.line.cursor, term.cursor, "after %s", step)
	}

	steps := []byte("show")
	for _, b := range steps {
		e.Feed(b)
		check("insert")
	}
	e.Feed(0x01) // Ctrl-A: home
	check("home")
	e.Feed(0x05) // Ctrl-E: end
	check("end")
	e.Feed(0x08) // backspace
	check("backspace")
	e.Feed('w')
	check("reinsert")
	e.Feed(0x01) // Ctrl-A: home
	check("home-again")
	e.Feed(0x0B) // Ctrl-K: kill to end
	check("kill-to-end")
}
