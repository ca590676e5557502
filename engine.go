package vtline

// Result is the return value of Feed (§4.1's CONTINUE | EXIT contract).
type Result int

const (
	Continue Result = iota
	Exit
)

const helpColumn = 16

// Engine is the single long-lived aggregate described in §3: a line
// buffer, a history ring, an escape accumulator, a borrowed grammar, and
// the print sink every visible mutation flows through. There is no
// dynamic allocation after construction beyond what Go's own slice/string
// machinery needs to hand argument bytes and words to the caller.
type Engine struct {
	line lineBuffer
	hist history
	esc  escapeAccum
	echo echoWriter

	prompt   []byte
	callback func(ParsedLine)

	root   TokenList
	dict   TokenDict
	levels []TokenList
}

// New constructs an Engine rooted at root, resolving token IDs to display
// strings via dict, writing every echo through print/ctx. Equivalent to
// the source's init(), wired up in one call per the teacher's functional
// options pattern (options.go).
func New(root TokenList, dict TokenDict, print PrintFunc, ctx interface{}, opts ...Option) *Engine {
	if print == nil {
		panic("vtline: nil print sink")
	}
	e := &Engine{
		root:   root,
		dict:   dict,
		levels: []TokenList{root},
	}
	e.echo = echoWriter{print: print, ctx: ctx}
	e.hist.step = noStep

	for _, o := range opts {
		o.apply(e)
	}
	return e
}

// SetPrompt stores the borrowed prompt and emits it once.
func (e *Engine) SetPrompt(prompt string) {
	e.prompt = []byte(prompt)
	e.emitPrompt()
}

// SetCallback registers the parse sink invoked on successful submission.
func (e *Engine) SetCallback(fn func(ParsedLine)) {
	e.callback = fn
}

func (e *Engine) currentLevel() TokenList {
	return e.levels[len(e.levels)-1]
}

func (e *Engine) emitPrompt() {
	e.echo.write(e.prompt)
}

func (e *Engine) dispatchCommand(cmd command) {
	if fn, ok := baseCommands[cmd]; ok {
		fn(e)
	}
}

// Feed drives the engine by a single input byte (§4.1). CONTINUE means
// keep feeding; EXIT means the host requested termination (Ctrl-D on an
// empty line).
func (e *Engine) Feed(b byte) Result {
	debugPrintf("feed: %s\n", debugByte(b))

	if e.esc.active() {
		action, done := e.esc.feed(b)
		if done {
			e.esc.reset()
			if cmd, ok := escapeBindings[action]; ok {
				e.dispatchCommand(cmd)
			}
		}
		return Continue
	}

	switch {
	case b == 0x1B:
		e.esc.begin()
		return Continue
	case b == '\r' || b == '\n':
		e.submit()
		return Continue
	case b == 0x09:
		if e.line.atEnd() {
			e.complete()
		}
		return Continue
	case b == 0x04:
		if e.line.length == 0 {
			return Exit
		}
		return Continue
	}

	if cmd, ok := controlBindings[b]; ok {
		e.dispatchCommand(cmd)
		return Continue
	}

	if b >= 0x20 && b <= 0x7E {
		e.line.insert(&e.echo, b)
		e.hist.step = noStep
	}
	return Continue
}

// submit implements line submission, §4.9.
func (e *Engine) submit() {
	e.echo.writeString("\r\n")

	if e.line.length > 0 {
		line := append([]byte(nil), e.line.text()...)
		e.hist.add(line)

		res, perr, ok := split(e.line.buf[:], e.line.length)
		switch {
		case !ok:
			e.echo.writeString(perr.Message + "\r\n")
		case wordIs(e.line.buf[:], res, 0, "help"):
			e.runHelp(wordsOf(e.line.buf[:], res))
		case wordIs(e.line.buf[:], res, 0, "history"):
			e.hist.showAll(&e.echo, true)
		default:
			words := wordsOf(e.line.buf[:], res)
			parsed, perr := tokenize(e.currentLevel(), e.dict, words)
			if perr.Kind != NoError {
				e.echo.writeString(perr.Message + "\r\n")
			} else if e.callback != nil {
				e.callback(parsed)
			}
		}
	}

	e.line.reset()
	e.esc.reset()
	e.emitPrompt()
}

func (e *Engine) runHelp(words []string) {
	if len(words) == 1 {
		e.listTokens(e.root)
		return
	}

	ctx := completionContext(e.currentLevel(), e.dict, words[1:])
	entry := ctx.lastEntry
	printed := false
	if entry != nil && entry.Help != "" {
		e.echo.writeString(entry.Help + "\r\n")
		printed = true
	}
	if entry != nil && len(entry.SubTokens) > 0 {
		e.listTokensHelp(entry.SubTokens)
		printed = true
	}
	if !printed {
		e.echo.writeString("No help available.\r\n")
	}
}

func (e *Engine) listTokens(list TokenList) {
	for _, t := range list {
		e.echo.writeString("  " + e.dict[t.ID] + "\r\n")
	}
}

func (e *Engine) listTokensHelp(list TokenList) {
	for _, t := range list {
		line := "  " + e.dict[t.ID]
		for len(line) < helpColumn {
			line += " "
		}
		e.echo.writeString(line + t.Help + "\r\n")
	}
}

func argPlaceholder(k ArgType) string {
	switch k {
	case ArgInteger:
		return "<integer>"
	case ArgFloat:
		return "<float>"
	case ArgString:
		return "<string>"
	default:
		return ""
	}
}

// complete implements TAB handling (§4.8 continued). It is only reached
// when the cursor is at end-of-line (§4.1 item 4).
func (e *Engine) complete() {
	if e.line.length == 0 {
		e.echo.writeString("\r\n")
		e.listTokens(e.root)
		e.emitPrompt()
		e.echo.write(e.line.text())
		return
	}

	atSpace := e.line.buf[e.line.length-1] == ' '

	res, _, ok := split(e.line.buf[:], e.line.length)
	if !ok {
		e.emitPrompt()
		e.echo.write(e.line.text())
		return
	}

	if atSpace {
		words := wordsOf(e.line.buf[:], res)
		ctx := completionContext(e.currentLevel(), e.dict, words)
		unsplit(e.line.buf[:], e.line.length, res)
		if !ctx.ok {
			return
		}
		e.echo.writeString("\r\n")
		if ctx.pendingArg == ArgInteger || ctx.pendingArg == ArgFloat || ctx.pendingArg == ArgString {
			e.echo.writeString("  " + argPlaceholder(ctx.pendingArg) + "\r\n")
		} else {
			e.listTokens(ctx.candidates)
		}
		e.emitPrompt()
		e.echo.write(e.line.text())
		return
	}

	words := wordsOf(e.line.buf[:], res)
	partialIdx := res.count - 1
	partial := words[partialIdx]
	ctx := completionContext(e.currentLevel(), e.dict, words[:partialIdx])
	unsplit(e.line.buf[:], e.line.length, res)
	if !ctx.ok {
		return
	}
	if ctx.pendingArg == ArgInteger || ctx.pendingArg == ArgFloat || ctx.pendingArg == ArgString {
		return
	}

	matches := matchPrefix(ctx.candidates, e.dict, partial)
	switch len(matches) {
	case 0:
		return
	case 1:
		suffix := e.dict[matches[0].ID][len(partial):]
		for i := 0; i < len(suffix); i++ {
			e.line.insert(&e.echo, suffix[i])
		}
		e.line.insert(&e.echo, ' ')
	default:
		e.echo.writeString("\r\n")
		e.listTokens(matches)
		e.emitPrompt()
		e.echo.write(e.line.text())
	}
}

func wordsOf(buf []byte, r splitResult) []string {
	out := make([]string, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = string(word(buf, i, r))
	}
	return out
}

func wordIs(buf []byte, r splitResult, idx int, s string) bool {
	if idx >= r.count {
		return false
	}
	return string(word(buf, idx, r)) == s
}
